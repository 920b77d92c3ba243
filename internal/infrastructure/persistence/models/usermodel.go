package models

import (
	"time"

	"github.com/darna-inc/darna/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	FullName     string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber  string `gorm:"size:30"`
	UserType     string `gorm:"not null;size:20;default:individual"`
	PasswordHash string `gorm:"size:255"`
	PictureURL   string `gorm:"size:500"`
	Birthday     *time.Time
	Gender       *bool
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

type SocialMediaModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;uniqueIndex"`
	Facebook  string `gorm:"size:255"`
	Instagram string `gorm:"size:255"`
	TikTok    string `gorm:"column:tiktok;size:255"`
	WhatsApp  string `gorm:"column:whatsapp;size:30"`
	UpdatedAt time.Time
}

func (SocialMediaModel) TableName() string {
	return constants.TableSocialMedia
}

type BusinessAccountModel struct {
	ID                 uint   `gorm:"primarykey"`
	UserID             uint   `gorm:"not null;uniqueIndex"`
	CoverPictureURL    string `gorm:"size:500"`
	AgencyName         string `gorm:"not null;size:150"`
	RegistrationNumber string `gorm:"size:50"`
	BusinessAddress    string `gorm:"not null;size:255"`
	UpdatedAt          time.Time
}

func (BusinessAccountModel) TableName() string {
	return constants.TableBusinessAccounts
}

// NotificationSettingsModel has no column defaults on purpose: gorm would
// replace an explicit false with the default on insert.
type NotificationSettingsModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	Messages  bool `gorm:"not null"`
	Ads       bool `gorm:"not null"`
	UpdatedAt time.Time
}

func (NotificationSettingsModel) TableName() string {
	return constants.TableNotificationSettings
}
