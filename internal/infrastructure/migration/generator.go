package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/darna-inc/darna/internal/shared/logger"
)

// Generator scaffolds golang-migrate up/down file pairs.
type Generator struct {
	scriptsPath string
	now         func() time.Time
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		now:         time.Now,
		logger:      log,
	}
}

// CreateMigration writes <timestamp>_<name>.up.sql and .down.sql and returns
// their paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("migration name is required")
	}
	name = strings.ReplaceAll(name, " ", "_")

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	created := g.now()
	timestamp := created.Format("20060102150405")
	upPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	up := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created.Format(time.DateTime))
	if err := os.WriteFile(upPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration file: %w", err)
	}
	down := fmt.Sprintf("-- Rollback Migration: %s\n-- Created: %s\n\n", name, created.Format(time.DateTime))
	if err := os.WriteFile(downPath, []byte(down), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upPath,
		"down_file", downPath)
	return []string{upPath, downPath}, nil
}

func listSQL(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	return files, nil
}

func newFiles(before, after []string) []string {
	var out []string
	for _, f := range after {
		if !slices.Contains(before, f) {
			out = append(out, f)
		}
	}
	return out
}
