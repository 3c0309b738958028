// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (logging, database, schema) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/hero-catalog/internal/config"
	"github.com/JaimeStill/hero-catalog/internal/heroes/migrations"
	"github.com/JaimeStill/hero-catalog/pkg/database"
	"github.com/JaimeStill/hero-catalog/pkg/lifecycle"
	"github.com/JaimeStill/hero-catalog/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		dbConfig:  &cfg.Database,
	}, nil
}

// Start connects the database and brings the schema up to date unless
// migrations are disabled.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.dbConfig.SkipMigrations {
		i.Logger.Info("schema migrations skipped")
		return nil
	}
	if err := database.Migrate(i.dbConfig, migrations.FS, migrations.Dir, i.Logger); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}
