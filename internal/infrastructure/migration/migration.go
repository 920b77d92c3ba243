package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/shared/logger"
)

// Manager runs the configured strategy and then seeds reference data.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(ctx context.Context, db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Up(db); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	seeded, err := SeedPropertyTypes(ctx, db)
	if err != nil {
		return err
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName(),
		"property_types_added", seeded)
	return nil
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
