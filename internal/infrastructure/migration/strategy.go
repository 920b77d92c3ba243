// Package migration applies the database schema with goose, golang-migrate
// or gorm AutoMigrate, and seeds reference data.
package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/logger"
)

//go:embed scripts/*.sql
var embeddedScripts embed.FS

const embeddedScriptsDir = "scripts"

// Strategy names accepted by database.migration_strategy.
const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang-migrate"
	StrategyAuto          = "auto"
)

// Strategy applies and inspects schema migrations.
type Strategy interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB, steps int) error
	// Version returns the applied schema version and whether the last
	// migration left the database dirty.
	Version(db *gorm.DB) (int64, bool, error)
	// Create scaffolds a new migration named name.
	Create(name string) ([]string, error)
	GetName() string
}

// NewStrategy picks the strategy by name. scriptsPath is where new
// migrations are scaffolded, and where golang-migrate reads its up/down pairs.
func NewStrategy(name, scriptsPath string, log logger.Interface) (Strategy, error) {
	switch name {
	case "", StrategyGoose:
		return NewGooseStrategy(scriptsPath, log), nil
	case StrategyGolangMigrate:
		return NewGolangMigrateStrategy(scriptsPath, log), nil
	case StrategyAuto:
		return NewAutoMigrateStrategy(log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
}

func sqlDBOf(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB, nil
}

// GooseStrategy runs the SQL scripts embedded in the binary.
type GooseStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGooseStrategy(scriptsPath string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := sqlDBOf(db)
	if err != nil {
		return nil, err
	}
	goose.SetBaseFS(embeddedScripts)
	if err := goose.SetDialect(db.Dialector.Name()); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Up(db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, embeddedScriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) Down(db *gorm.DB, steps int) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, embeddedScriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, bool, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, false, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, false, nil
}

// Create writes a goose SQL file to scriptsPath. It is picked up by the next
// build, since the scripts are embedded.
func (s *GooseStrategy) Create(name string) ([]string, error) {
	goose.SetBaseFS(nil)
	defer goose.SetBaseFS(embeddedScripts)

	before, err := listSQL(s.scriptsPath)
	if err != nil {
		return nil, err
	}
	if err := goose.Create(nil, s.scriptsPath, name, "sql"); err != nil {
		return nil, fmt.Errorf("failed to create migration: %w", err)
	}
	after, err := listSQL(s.scriptsPath)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("migration created successfully", "name", name)
	return newFiles(before, after), nil
}

func (s *GooseStrategy) GetName() string {
	return StrategyGoose
}

// GolangMigrateStrategy reads NNN_name.up.sql / NNN_name.down.sql pairs from
// scriptsPath on disk. It is meant for operators who manage their own
// MySQL scripts.
type GolangMigrateStrategy struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGolangMigrateStrategy(scriptsPath string, log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) instance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := sqlDBOf(db)
	if err != nil {
		return nil, err
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+s.scriptsPath, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) Up(db *gorm.DB) error {
	m, err := s.instance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", currentVersion)
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GolangMigrateStrategy) Down(db *gorm.DB, steps int) error {
	m, err := s.instance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

func (s *GolangMigrateStrategy) Version(db *gorm.DB) (int64, bool, error) {
	m, err := s.instance(db)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int64(version), dirty, nil
}

func (s *GolangMigrateStrategy) Create(name string) ([]string, error) {
	return NewGenerator(s.scriptsPath, s.logger).CreateMigration(name)
}

func (s *GolangMigrateStrategy) GetName() string {
	return StrategyGolangMigrate
}

// AutoMigrateStrategy lets gorm derive the schema from the persistence
// models. It has no version history and cannot roll back.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoMigrateStrategy) Up(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed successfully", "models", len(models.All()))
	return nil
}

func (s *AutoMigrateStrategy) Down(*gorm.DB, int) error {
	return errors.New("auto migration does not support rollback")
}

func (s *AutoMigrateStrategy) Version(*gorm.DB) (int64, bool, error) {
	return 0, false, nil
}

func (s *AutoMigrateStrategy) Create(string) ([]string, error) {
	return nil, errors.New("auto migration derives the schema from models; switch to goose to create scripts")
}

func (s *AutoMigrateStrategy) GetName() string {
	return StrategyAuto
}
