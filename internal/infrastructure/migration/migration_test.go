package migration

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func TestNewStrategy(t *testing.T) {
	log := logger.NewNop()

	for name, want := range map[string]string{
		"":                    StrategyGoose,
		StrategyGoose:         StrategyGoose,
		StrategyGolangMigrate: StrategyGolangMigrate,
		StrategyAuto:          StrategyAuto,
	} {
		s, err := NewStrategy(name, t.TempDir(), log)
		require.NoError(t, err)
		assert.Equal(t, want, s.GetName())
	}

	_, err := NewStrategy("flyway", "", log)
	assert.Error(t, err)
}

func TestEmbeddedScripts(t *testing.T) {
	files, err := fs.Glob(embeddedScripts, "scripts/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	script, err := embeddedScripts.ReadFile("scripts/00001_init_schema.sql")
	require.NoError(t, err)
	body := string(script)
	assert.Contains(t, body, "-- +goose Up")
	assert.Contains(t, body, "-- +goose Down")
	for _, table := range []string{"users", "subscription_plans", "user_subscriptions", "properties", "favorites", "tickets", "messages", "property_types"} {
		assert.Contains(t, body, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
	assert.Contains(t, body, "uk_user_subscriptions_active_user")

	script, err = embeddedScripts.ReadFile("scripts/00002_user_profiles_and_tags.sql")
	require.NoError(t, err)
	body = string(script)
	for _, table := range []string{"social_media", "business_accounts", "notification_settings", "property_tags"} {
		assert.Contains(t, body, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
		assert.Contains(t, body, "DROP TABLE IF EXISTS "+table+";", table)
	}
}

func TestManager_MigrateWithAutoStrategySeedsOnce(t *testing.T) {
	gdb := setupTestDB(t)
	m := NewManager(NewAutoMigrateStrategy(logger.NewNop()), logger.NewNop())

	require.NoError(t, m.Migrate(context.Background(), gdb))
	require.NoError(t, m.Migrate(context.Background(), gdb))

	var count int64
	require.NoError(t, gdb.Model(&models.PropertyTypeModel{}).Count(&count).Error)
	assert.Equal(t, int64(23), count)

	var apartments models.PropertyTypeModel
	require.NoError(t, gdb.First(&apartments, 2).Error)
	assert.Equal(t, "Appartements", apartments.NameFR)
	require.NotNil(t, apartments.ParentID)
	assert.Equal(t, uint(1), *apartments.ParentID)
}

func TestAutoMigrateStrategy_Limits(t *testing.T) {
	s := NewAutoMigrateStrategy(logger.NewNop())
	assert.Error(t, s.Down(nil, 1))
	_, err := s.Create("x")
	assert.Error(t, err)
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir, logger.NewNop())
	g.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }

	files, err := g.CreateMigration("add listing geo index")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "20250601093000_add_listing_geo_index.up.sql"), files[0])
	assert.True(t, strings.HasSuffix(files[1], ".down.sql"))

	for _, f := range files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}

	_, err = g.CreateMigration("  ")
	assert.Error(t, err)
}

func TestGooseStrategy_Create(t *testing.T) {
	dir := t.TempDir()
	s := NewGooseStrategy(dir, logger.NewNop())

	files, err := s.Create("add_listing_geo_index")

	require.NoError(t, err)
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "+goose Up")
}
