package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/user"
	uservo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/logger"
)

func TestUserRepository_UpdateProfileFields(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNop())
	ctx := context.Background()

	id := seedUser(t, gdb, "Amina", "amina@example.dz", "0550000000")
	seedUser(t, gdb, "Karim", "karim@example.dz", "")

	u, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u)

	male := false
	birthday := utcDate(1994, 6, 21)
	email, err := uservo.NewEmail("amina.b@example.dz")
	require.NoError(t, err)
	require.NoError(t, u.UpdateDetails("Amina B.", email, "0551111111", user.Profile{
		PictureURL: "https://cdn.example.com/a.png",
		Birthday:   &birthday,
		Gender:     &male,
	}))
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByEmail(ctx, "amina.b@example.dz")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Amina B.", got.FullName())
	require.NotNil(t, got.Profile().Gender)
	assert.False(t, *got.Profile().Gender, "an explicit false is stored, not dropped")
	require.NotNil(t, got.Profile().Birthday)

	require.NoError(t, got.UpdateDetails("Amina B.", got.Email(), "0551111111", user.Profile{}))
	require.NoError(t, repo.Update(ctx, got))
	cleared, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, cleared.Profile().Birthday)
	assert.Nil(t, cleared.Profile().Gender)

	taken, err := uservo.NewEmail("karim@example.dz")
	require.NoError(t, err)
	require.NoError(t, cleared.UpdateDetails("Amina B.", taken, "", user.Profile{}))
	assert.ErrorIs(t, repo.Update(ctx, cleared), user.ErrEmailAlreadyExists)
}

func TestUserRepository_ListFiltersAndOrders(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNop())
	ctx := context.Background()

	seedUser(t, gdb, "Amina Immo", "contact@amina-immo.dz", "")
	agency := seedUser(t, gdb, "Sahel Promotion", "hello@sahel.dz", "0661")
	require.NoError(t, gdb.Model(&models.UserModel{}).Where("id = ?", agency).Update("user_type", "agency").Error)
	seedUser(t, gdb, "Yacine", "yacine@example.dz", "")

	users, total, err := repo.List(ctx, user.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "Yacine", users[0].FullName(), "newest first")

	users, total, err = repo.List(ctx, user.ListFilter{Roles: []authorization.UserRole{authorization.RoleAgency}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, agency, users[0].ID())

	_, total, err = repo.List(ctx, user.ListFilter{Query: "amina"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserRepository_DeleteRemovesOwnedRows(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewNop())
	props := NewPropertyRepository(gdb, logger.NewNop())
	profiles := NewProfileRepository(gdb, logger.NewNop())
	ctx := context.Background()

	owner := seedUser(t, gdb, "Owner", "owner@example.dz", "")
	visitor := seedUser(t, gdb, "Visitor", "visitor@example.dz", "")

	listing := newListing(t, owner, "Villa Tipaza", "Tipaza", 40000000, 250, 5)
	require.NoError(t, props.Create(ctx, listing))
	kept := newListing(t, visitor, "Studio Oran", "Oran", 6000000, 30, 1)
	require.NoError(t, props.Create(ctx, kept))

	require.NoError(t, gdb.Create(&models.FavoriteModel{UserID: visitor, PropertyID: listing.ID()}).Error)
	require.NoError(t, gdb.Create(&models.FavoriteModel{UserID: owner, PropertyID: kept.ID()}).Error)
	require.NoError(t, gdb.Create(&models.MessageModel{SenderID: visitor, ReceiverID: owner, Content: "hi", SentAt: utcDate(2026, 3, 1)}).Error)
	require.NoError(t, profiles.SaveSocialMedia(ctx, owner, user.SocialMedia{Instagram: "https://instagram.com/owner"}))
	require.NoError(t, gdb.Create(&models.PropertyTagModel{Name: "piscine", UserID: &owner}).Error)

	require.NoError(t, repo.Delete(ctx, owner))

	gone, err := repo.GetByID(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for name, m := range map[string]interface{}{
		"favorites": &models.FavoriteModel{},
		"messages":  &models.MessageModel{},
		"social":    &models.SocialMediaModel{},
	} {
		var n int64
		require.NoError(t, gdb.Model(m).Count(&n).Error)
		assert.Zero(t, n, name)
	}

	var listings int64
	require.NoError(t, gdb.Model(&models.PropertyModel{}).Count(&listings).Error)
	assert.Equal(t, int64(1), listings, "other users' listings stay")

	var tag models.PropertyTagModel
	require.NoError(t, gdb.Where("name = ?", "piscine").First(&tag).Error)
	assert.Nil(t, tag.UserID, "tags outlive their author")

	assert.ErrorIs(t, repo.Delete(ctx, owner), user.ErrUserNotFound)
}
