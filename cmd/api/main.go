package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adboard/adboard-go/internal/config"
	"github.com/adboard/adboard-go/internal/handler"
	"github.com/adboard/adboard-go/internal/repository"
	"github.com/adboard/adboard-go/internal/service"
	"github.com/adboard/adboard-go/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Migrate(db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
	listingService := service.NewListingService(listingRepo, userRepo, cfg.StrictOwners)

	authHandler := handler.NewAuthHandler(authService, cfg.BodyLimit)
	listingHandler := handler.NewListingHandler(listingService, cfg.BodyLimit)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.NewRouter(cfg, authHandler, listingHandler),
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
