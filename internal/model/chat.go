package model

// ChatMessage is the body of POST /chat. Context is an optional hint the
// frontend sends along (current page, selected vehicle); the resolver only
// needs the message itself.
type ChatMessage struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
