package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"toyota-finder-api/internal/assistant"
	"toyota-finder-api/internal/client"
	"toyota-finder-api/internal/config"
	"toyota-finder-api/internal/database"
	"toyota-finder-api/internal/handler"
	"toyota-finder-api/internal/logger"
	"toyota-finder-api/internal/repository"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("starting toyota-finder-api")

	ctx := context.Background()

	log.Info("connecting to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name))
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := database.Seed(ctx, db); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("database ready")

	// Repositories
	vehicleRepo := repository.NewVehicleRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	historyRepo := repository.NewHistoryRepo(db)
	comparisonRepo := repository.NewComparisonRepo(db)

	// Assistant
	tavily := client.NewTavilyClient(cfg.Tavily.APIKey, log)
	gemini := client.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	resolver := assistant.NewResolver(vehicleRepo, tavily, gemini, log)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	vehicleHandler := handler.NewVehicleHandler(vehicleRepo)
	compareHandler := handler.NewCompareHandler(vehicleRepo, comparisonRepo, log)
	financeHandler := handler.NewFinanceHandler()
	favoriteHandler := handler.NewFavoriteHandler(favoriteRepo, vehicleRepo)
	historyHandler := handler.NewHistoryHandler(historyRepo)
	chatHandler := handler.NewChatHandler(resolver)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/", handler.Info)
	r.Get("/health", healthHandler.Check)

	r.Get("/cars", vehicleHandler.List)
	r.Get("/cars/{id}", vehicleHandler.Get)
	r.Post("/compare", compareHandler.Compare)

	r.Post("/finance", financeHandler.Loan)
	r.Post("/lease", financeHandler.Lease)

	r.Get("/favorites/{userID}", favoriteHandler.List)
	r.Post("/favorites", favoriteHandler.Create)
	r.Delete("/favorites/{userID}/{vehicleID}", favoriteHandler.Delete)

	r.Post("/history", historyHandler.Record)
	r.Get("/history/{userID}", historyHandler.List)

	r.Post("/chat", chatHandler.Chat)

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("server listening", zap.String("port", cfg.APIPort))
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}
