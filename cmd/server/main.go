package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omicronventa13-glitch/omicron-backend/internal/config"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
	"github.com/omicronventa13-glitch/omicron-backend/internal/router"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger — dev: pretty, prod: JSON
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	storage, err := infra.NewStorage(cfg.UploadsPath, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare uploads directory")
	}

	// First boot on an empty database seeds the default accounts.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := service.SeedUsers(seedCtx, repository.NewUserRepository(db)); err != nil {
		log.Error().Err(err).Msg("user seeding failed")
	}
	seedCancel()

	r := router.New(cfg, db, storage)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Omicron POS backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	if err := db.Client().Disconnect(context.Background()); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	log.Info().Msg("server exited")
}
