package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/config"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/handler"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/middleware"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/repository"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("schema setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	readingRepo := repository.NewReadingRepository(db)

	authService := service.NewAuthService(userRepo)
	readingService := service.NewReadingService(readingRepo)
	exportService := service.NewExportService(readingRepo)

	authHandler := handler.NewAuthHandler(authService)
	readingHandler := handler.NewReadingHandler(readingService)
	exportHandler := handler.NewExportHandler(exportService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService))

		r.Post("/readings", readingHandler.HandleSubmit)
		r.Get("/readings", readingHandler.HandleHistory)
		r.Put("/readings/{id}", readingHandler.HandleUpdate)
		r.Delete("/readings/{id}", readingHandler.HandleDelete)

		r.Get("/export", exportHandler.HandleExport)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
