package dto

import (
	"time"

	"github.com/darna-inc/darna/internal/domain/user"
)

// UserResponse represents a user as returned by the API
type UserResponse struct {
	ID          uint       `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	UserType    string     `json:"user_type"`
	PictureURL  string     `json:"picture_url,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Gender      *bool      `json:"gender,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthResponse is returned by signup and signin
type AuthResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	profile := u.Profile()
	return &UserResponse{
		ID:          u.ID(),
		FullName:    u.FullName(),
		Email:       u.Email().String(),
		PhoneNumber: u.PhoneNumber(),
		UserType:    u.Role().String(),
		PictureURL:  profile.PictureURL,
		Birthday:    profile.Birthday,
		Gender:      profile.Gender,
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

type SocialMediaDTO struct {
	Facebook  string `json:"facebook" binding:"omitempty,url"`
	Instagram string `json:"instagram" binding:"omitempty,url"`
	TikTok    string `json:"tiktok" binding:"omitempty,url"`
	WhatsApp  string `json:"whatsapp" binding:"omitempty,max=30"`
}

func (d *SocialMediaDTO) ToDomain() user.SocialMedia {
	return user.SocialMedia{
		Facebook:  d.Facebook,
		Instagram: d.Instagram,
		TikTok:    d.TikTok,
		WhatsApp:  d.WhatsApp,
	}
}

type BusinessAccountDTO struct {
	CoverPictureURL    string `json:"cover_picture_url" binding:"omitempty,url"`
	AgencyName         string `json:"agency_name" binding:"required,max=150"`
	RegistrationNumber string `json:"registration_number" binding:"omitempty,max=50"`
	BusinessAddress    string `json:"business_address" binding:"required,max=255"`
}

func (d *BusinessAccountDTO) ToDomain() user.BusinessAccount {
	return user.BusinessAccount{
		CoverPictureURL:    d.CoverPictureURL,
		AgencyName:         d.AgencyName,
		RegistrationNumber: d.RegistrationNumber,
		BusinessAddress:    d.BusinessAddress,
	}
}

type NotificationSettingsResponse struct {
	Messages bool `json:"messages"`
	Ads      bool `json:"ads"`
}

func ToNotificationSettingsResponse(s user.NotificationSettings) *NotificationSettingsResponse {
	return &NotificationSettingsResponse{Messages: s.Messages, Ads: s.Ads}
}

// ProfileResponse is the account together with its side records. Tokens
// are bearer-bound to the email, so an email change comes back with a new one.
type ProfileResponse struct {
	*UserResponse
	SocialMedia          *SocialMediaDTO               `json:"social_media"`
	BusinessAccount      *BusinessAccountDTO           `json:"business_account"`
	NotificationSettings *NotificationSettingsResponse `json:"notification_settings,omitempty"`
	AccessToken          string                        `json:"access_token,omitempty"`
	ExpiresIn            int64                         `json:"expires_in,omitempty"`
}

func ToProfileResponse(u *user.User, sm *user.SocialMedia, ba *user.BusinessAccount) *ProfileResponse {
	resp := &ProfileResponse{UserResponse: ToUserResponse(u)}
	if sm != nil {
		resp.SocialMedia = &SocialMediaDTO{
			Facebook:  sm.Facebook,
			Instagram: sm.Instagram,
			TikTok:    sm.TikTok,
			WhatsApp:  sm.WhatsApp,
		}
	}
	if ba != nil {
		resp.BusinessAccount = &BusinessAccountDTO{
			CoverPictureURL:    ba.CoverPictureURL,
			AgencyName:         ba.AgencyName,
			RegistrationNumber: ba.RegistrationNumber,
			BusinessAddress:    ba.BusinessAddress,
		}
	}
	return resp
}
