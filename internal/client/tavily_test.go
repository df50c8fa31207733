package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTavilySearchWithoutKey(t *testing.T) {
	c := NewTavilyClient("", zaptest.NewLogger(t))

	results, err := c.Search(context.Background(), "prius reliability", nil, 5)
	require.NoError(t, err, "missing credential degrades silently")
	assert.Empty(t, results)
}

func TestTavilySearchDomainScoping(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query
		assert.Equal(t, "test-key", req.APIKey)
		assert.Equal(t, 5, req.MaxResults)

		json.NewEncoder(w).Encode(tavilyResponse{
			Results: []SearchResult{
				{Title: "RAV4 review", Content: "Holds up well.", URL: "https://www.edmunds.com/rav4"},
			},
		})
	}))
	defer srv.Close()

	c := NewTavilyClient("test-key", zaptest.NewLogger(t))
	c.baseURL = srv.URL

	results, err := c.Search(context.Background(), "rav4 reliability",
		[]string{"www.edmunds.com", "www.kbb.com"}, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "RAV4 review", results[0].Title)
	assert.Equal(t, "rav4 reliability site:www.edmunds.com site:www.kbb.com", gotQuery)
}

func TestTavilySearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(tavilyResponse{
			Results: []SearchResult{
				{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"},
			},
		})
	}))
	defer srv.Close()

	c := NewTavilyClient("test-key", zaptest.NewLogger(t))
	c.baseURL = srv.URL

	results, err := c.Search(context.Background(), "tundra towing", nil, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestTavilySearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewTavilyClient("test-key", zaptest.NewLogger(t))
	c.baseURL = srv.URL

	_, err := c.Search(context.Background(), "anything", nil, 5)
	assert.Error(t, err)
}
