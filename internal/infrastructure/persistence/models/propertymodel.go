package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/darna-inc/darna/internal/shared/constants"
)

// PropertyModel represents the database persistence model for listings
type PropertyModel struct {
	ID             uint            `gorm:"primarykey"`
	UserID         uint            `gorm:"not null;index"`
	PropertyTypeID uint            `gorm:"not null;index"`
	Title          string          `gorm:"not null;size:200"`
	Slug           string          `gorm:"uniqueIndex;not null;size:120"`
	Description    string          `gorm:"type:text"`
	AdType         string          `gorm:"not null;size:10;index"`
	Status         string          `gorm:"not null;size:20;index"`
	RentPeriod     *string         `gorm:"size:10"`
	Condition      int             `gorm:"not null;default:3"`
	Price          decimal.Decimal `gorm:"type:decimal(14,2);not null;index"`
	Latitude       *float64
	Longitude      *float64
	Address        string   `gorm:"not null;size:255"`
	City           string   `gorm:"not null;size:100;index"`
	PostalCode     string   `gorm:"size:20"`
	AreaSqMeters   *float64 `gorm:"index"`
	NumRooms       *int
	Bathrooms      *int
	Furnished      bool `gorm:"not null;default:false"`
	OwnershipBook  *bool
	Images         datatypes.JSON
	Tags           datatypes.JSON
	Views          int       `gorm:"not null;default:0"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (PropertyModel) TableName() string {
	return constants.TableProperties
}

// FavoriteModel links a user to a listing they bookmarked.
type FavoriteModel struct {
	ID         uint `gorm:"primarykey"`
	UserID     uint `gorm:"not null;uniqueIndex:uk_favorites_user_property,priority:1"`
	PropertyID uint `gorm:"not null;uniqueIndex:uk_favorites_user_property,priority:2;index"`
	CreatedAt  time.Time
}

func (FavoriteModel) TableName() string {
	return constants.TableFavorites
}

type PropertyTypeModel struct {
	ID       uint   `gorm:"primarykey"`
	Name     string `gorm:"not null;size:100"`
	NameFR   string `gorm:"column:name_fr;size:100"`
	NameAR   string `gorm:"column:name_ar;size:100"`
	ParentID *uint  `gorm:"index"`
}

func (PropertyTypeModel) TableName() string {
	return constants.TablePropertyTypes
}

// PropertyTagModel is a free-form tag. A tag is visible to the user who
// introduced it and, once approved, to everyone.
type PropertyTagModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:50"`
	UserID    *uint  `gorm:"index"`
	Approved  bool   `gorm:"not null;index"`
	CreatedAt time.Time
}

func (PropertyTagModel) TableName() string {
	return constants.TablePropertyTags
}
