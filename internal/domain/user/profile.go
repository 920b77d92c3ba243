package user

import (
	"time"

	"github.com/darna-inc/darna/internal/shared/authorization"
)

// Profile holds the optional public details of an account.
type Profile struct {
	PictureURL string
	Birthday   *time.Time
	// Gender is true for male, false for female, nil when not given.
	Gender *bool
}

type SocialMedia struct {
	Facebook  string
	Instagram string
	TikTok    string
	WhatsApp  string
}

// BusinessAccount is the company card shown on agency and developer listings.
type BusinessAccount struct {
	CoverPictureURL    string
	AgencyName         string
	RegistrationNumber string
	BusinessAddress    string
}

// NotificationSettings control which pushes and emails a user receives.
type NotificationSettings struct {
	Messages bool
	Ads      bool
}

// DefaultNotificationSettings applies until the user saves their own.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{Messages: true, Ads: true}
}

// businessRoles may publish a business account.
var businessRoles = authorization.NewRoleSet(
	authorization.RoleAgency,
	authorization.RoleDeveloper,
	authorization.RoleAdmin,
)

// CanHoldBusinessAccount reports whether the role may publish a business account.
func CanHoldBusinessAccount(role authorization.UserRole) bool {
	return businessRoles.Contains(role)
}
