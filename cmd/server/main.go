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

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/config"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/router"
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

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal().Msg("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "mi-comalito-dev"
		log.Warn().Msg("JWT_SECRET not set, using development secret")
	}

	// Seed accounts and catalogs up front so the first request never
	// pays for initialization.
	usuarioRepo := repository.NewUsuarioRepository(cfg.DataDir)
	if err := usuarioRepo.Inicializar(cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize user store")
	}
	catalogoRepo := repository.NewCatalogoRepository(cfg.DataDir)
	for _, familia := range model.Familias() {
		if _, err := catalogoRepo.Cargar(familia); err != nil {
			log.Fatal().Err(err).Str("familia", string(familia)).Msg("failed to initialize catalog")
		}
	}

	r := router.New(cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Mi Comalito backend listening on :%d", cfg.Port)
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
	log.Info().Msg("server exited")
}
