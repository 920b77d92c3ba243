package user

import (
	"context"

	"github.com/darna-inc/darna/internal/shared/authorization"
)

// Repository defines the interface for user data operations. Getters
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update returns ErrEmailAlreadyExists when the new email is taken and
	// ErrUserNotFound when the row is gone.
	Update(ctx context.Context, user *User) error
	// Delete removes the account and everything it owns.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

// ListFilter selects users for the back office. Empty fields are ignored.
type ListFilter struct {
	// Query matches full name, email or phone number.
	Query  string
	Roles  []authorization.UserRole
	Offset int
	Limit  int
}

// ProfileRepository stores the per-user records that sit beside the account.
// Getters return (nil, nil) when the user never saved the record.
type ProfileRepository interface {
	GetSocialMedia(ctx context.Context, userID uint) (*SocialMedia, error)
	SaveSocialMedia(ctx context.Context, userID uint, sm SocialMedia) error
	GetBusinessAccount(ctx context.Context, userID uint) (*BusinessAccount, error)
	SaveBusinessAccount(ctx context.Context, userID uint, ba BusinessAccount) error
	// GetNotificationSettings falls back to DefaultNotificationSettings.
	GetNotificationSettings(ctx context.Context, userID uint) (NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, userID uint, s NotificationSettings) error
}
