// wpmigrate runs the WordPress dump migration as a one-shot job, the same
// pipeline the POST /migrate endpoint triggers.
package main

import (
	"context"
	"os"

	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/database"
	"github.com/vision4soccer-api/internal/repository"
	"github.com/vision4soccer-api/internal/service"
	"github.com/vision4soccer-api/pkg/logger"
)

func main() {
	log := logger.New()
	log.Info().Msg("Starting WordPress migration job...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	repos := repository.New(db)
	services := service.NewServices(repos, cfg, log)

	summary := services.Migration.Run(context.Background())
	if !summary.Success {
		log.Error().Str("error", summary.Error).Msg("Migration failed")
		os.Exit(1)
	}

	log.Info().
		Int("migrated", summary.Migrated).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("Migration successful")
}
