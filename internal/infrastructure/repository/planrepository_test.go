package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/logger"
)

func TestPlanRepository_CRUD(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPlanRepository(gdb, logger.NewNop())
	ctx := context.Background()

	features, err := vo.NewFeatureSet("properties", "chat")
	require.NoError(t, err)
	plan, err := subscription.NewPlan("Agency", "for agencies", decimal.RequireFromString("4999.50"), 25, features)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Price().Equal(decimal.RequireFromString("4999.50")))
	assert.Equal(t, 25, got.MaxProperties())
	assert.True(t, got.HasFeature(vo.FeatureChat))

	got.SetFeatures(nil)
	require.NoError(t, got.UpdateName("Agency+"))
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, plan.ID())
	require.NoError(t, err)
	assert.Equal(t, "Agency+", reloaded.Name())
	assert.Nil(t, reloaded.Features(), "clearing features stores NULL")

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlanRepository_GetFreePlan(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPlanRepository(gdb, logger.NewNop())
	ctx := context.Background()

	none, err := repo.GetFreePlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	seedPlan(t, gdb, "Pro", 2500, `["properties"]`)
	freeID := seedPlan(t, gdb, "Free", 0, `["properties"]`)
	seedPlan(t, gdb, "Free again", 0, `[]`)

	free, err := repo.GetFreePlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, free)
	assert.Equal(t, freeID, free.ID(), "first zero-priced plan wins")
	assert.True(t, free.IsFree())
}

func TestPlanRepository_DeleteInUse(t *testing.T) {
	gdb := setupTestDB(t)
	plans := NewPlanRepository(gdb, logger.NewNop())
	subs := NewSubscriptionRepository(gdb, logger.NewNop())
	ctx := context.Background()

	usedID := seedPlan(t, gdb, "Used", 100, `[]`)
	unusedID := seedPlan(t, gdb, "Unused", 200, `[]`)
	userID := seedUser(t, gdb, "Omar", "omar@example.dz", "")

	sub, err := subscription.NewSubscriptionRequest(userID, usedID, vo.PaymentMethodBaridiMob, "", "", time.Now().UTC(), 1)
	require.NoError(t, err)
	require.NoError(t, subs.Create(ctx, sub))

	assert.ErrorIs(t, plans.Delete(ctx, usedID), subscription.ErrPlanInUse)
	assert.NoError(t, plans.Delete(ctx, unusedID))
	assert.ErrorIs(t, plans.Delete(ctx, unusedID), subscription.ErrPlanNotFound)
}

func TestPlanRepository_ListSearch(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPlanRepository(gdb, logger.NewNop())
	ctx := context.Background()

	seedPlan(t, gdb, "Free", 0, `[]`)
	seedPlan(t, gdb, "Agency Gold", 9000, `[]`)
	seedPlan(t, gdb, "Agency Silver", 5000, `[]`)

	items, total, err := repo.List(ctx, subscription.PlanFilter{Query: "agency", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Agency Silver", items[0].Name(), "cheapest first")
}

func TestPlanRepository_ReadsPlanWithHandEditedFeatures(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPlanRepository(gdb, logger.NewNop())

	id := seedPlan(t, gdb, "Free", 0, `["favorite","vip","favorite"]`)

	free, err := repo.GetFreePlan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, free)
	assert.Equal(t, id, free.ID())
	assert.True(t, free.HasFeature(vo.FeatureFavorite))
	assert.Equal(t, 1, free.Features().Len())
}
