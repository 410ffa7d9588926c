package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bilgisen/atlas/internal/api"
	"github.com/bilgisen/atlas/internal/cache"
	"github.com/bilgisen/atlas/internal/cms"
	"github.com/bilgisen/atlas/internal/config"
	"github.com/bilgisen/atlas/internal/content"
	"github.com/bilgisen/atlas/internal/logger"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	output := cfg.LogFile
	if output == "" {
		output = "stdout"
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: !cfg.IsProduction(),
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Str("env", cfg.Env).Msg("Starting application...")

	// Redis is optional; without it every page goes to the content platform.
	var store cache.Store
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis client")
		}
		store = redisClient
		defer func() {
			log.Info().Msg("Closing Redis client...")
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing Redis client")
			}
		}()
	}

	atlas := cms.NewClient(cms.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		UseCDN:     cfg.SanityUseCDN,
		Token:      cfg.SanityToken,
		Timeout:    cfg.HTTPTimeout,
		Cache:      store,
		CacheTTL:   cfg.CacheTTL,
	})

	var accounts *cms.Client
	if cfg.Customer360ProjectID != "" {
		accounts = cms.NewClient(cms.Config{
			ProjectID:  cfg.Customer360ProjectID,
			Dataset:    cfg.Customer360Dataset,
			APIVersion: cfg.SanityAPIVersion,
			UseCDN:     cfg.SanityUseCDN,
			Timeout:    cfg.HTTPTimeout,
			Cache:      store,
			CacheTTL:   cfg.CacheTTL,
		})
	}

	handlers := api.NewHandlers(cfg, content.NewService(atlas, accounts), store)
	app := api.NewApp(cfg, handlers)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
