package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amk-marketing/landing-api/internal/api"
	mongodb "github.com/amk-marketing/landing-api/internal/infrastructure/db/mongo"
	"github.com/amk-marketing/landing-api/internal/pkg/config"
	"github.com/amk-marketing/landing-api/pkg/logger"

	_ "github.com/amk-marketing/landing-api/docs"
)

// @title        AMK Landing API
// @version      1.0
// @description  Lead capture and sample content generation backend for the AMK landing page.
// @BasePath     /
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo is optional; without MONGO_URI leads live in process memory only.
	var db *mongo.Database
	if cfg.Mongo.URI != "" {
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := mongodb.NewLeadRepository(database).EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		db = database
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo lead store")
	} else {
		log.Info().Msg("using in-memory lead store")
	}

	e := api.NewRouter(cfg, db, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
