package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/darna-inc/darna/internal/shared/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "goose", cfg.Database.MigrationStrategy)
	assert.Equal(t, 1, cfg.Subscription.FreePlanPeriodMonths)
	assert.Equal(t, 1, cfg.Subscription.ExpiryLookaheadMonths)
	assert.Equal(t, sharedConfig.SweepConditionPastDue, cfg.Subscription.SweepCondition)
	assert.Equal(t, "00:00", cfg.Scheduler.SweepAt)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DARNA_SERVER_PORT", "7070")
	t.Setenv("DARNA_SUBSCRIPTION_SWEEP_CONDITION", "literal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, sharedConfig.SweepConditionLiteral, cfg.Subscription.SweepCondition)
}

func TestLoad_RejectsUnknownSweepCondition(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DARNA_SUBSCRIPTION_SWEEP_CONDITION", "whenever")

	_, err := Load("")
	assert.Error(t, err)
}
