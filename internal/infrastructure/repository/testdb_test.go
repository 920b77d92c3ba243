package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
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

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, name, email, phone string) uint {
	t.Helper()
	u := &models.UserModel{FullName: name, Email: email, PhoneNumber: phone, UserType: "individual"}
	require.NoError(t, gdb.Create(u).Error)
	return u.ID
}

func seedPlan(t *testing.T, gdb *gorm.DB, name string, price int64, features string) uint {
	t.Helper()
	p := &models.PlanModel{Name: name, Price: decimal.NewFromInt(price), MaxProperties: 3}
	if features != "" {
		p.Features = []byte(features)
	}
	require.NoError(t, gdb.Create(p).Error)
	return p.ID
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
