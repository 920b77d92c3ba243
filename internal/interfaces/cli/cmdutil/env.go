// Package cmdutil holds the start-up steps shared by the CLI commands.
package cmdutil

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/infrastructure/config"
	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Environment returns the ENV variable when set, otherwise flagValue.
func Environment(flagValue string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// LoadConfig loads configuration for env and initializes the global logger
// and the business timezone.
func LoadConfig(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Bootstrap loads configuration and opens the database. Callers close the
// database with database.Close.
func Bootstrap(ctx context.Context, env string) (*config.Config, logger.Interface, *gorm.DB, error) {
	cfg, log, err := LoadConfig(env)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Init(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, db, nil
}
