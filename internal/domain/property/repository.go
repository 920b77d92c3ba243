package property

import (
	"context"

	"github.com/shopspring/decimal"

	vo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	GetBySlug(ctx context.Context, slug string) (*Property, error)
	Update(ctx context.Context, property *Property) error
	// Delete removes the property only when ownerID owns it and returns
	// ErrPropertyNotFound otherwise.
	Delete(ctx context.Context, id, ownerID uint) error
	List(ctx context.Context, filter Filter) ([]*Property, int64, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	// IncrementViews bumps the view counter atomically and returns the new value.
	IncrementViews(ctx context.Context, id uint) (int, error)
	AreaRange(ctx context.Context) (min, max float64, err error)
}

type FavoriteRepository interface {
	// Toggle adds or removes the favorite and reports whether it now exists.
	Toggle(ctx context.Context, userID, propertyID uint) (bool, error)
	// FavoritedAmong returns the subset of propertyIDs that userID has favorited.
	FavoritedAmong(ctx context.Context, userID uint, propertyIDs []uint) (map[uint]bool, error)
}

type TypeRepository interface {
	List(ctx context.Context) ([]*Type, error)
	GetByID(ctx context.Context, id uint) (*Type, error)
	Create(ctx context.Context, t *Type) error
	// Update renames the type; the parent never changes.
	Update(ctx context.Context, t *Type) error
	// Delete returns ErrPropertyTypeInUse while listings or child types
	// still reference the type.
	Delete(ctx context.Context, id uint) error
}

// TagRepository reads the tag vocabulary. Tags are recorded by
// Repository.Create and Repository.Update on behalf of the listing owner.
type TagRepository interface {
	// ListVisible returns approved tags plus the ones userID introduced.
	ListVisible(ctx context.Context, userID uint) ([]*Tag, error)
	Approve(ctx context.Context, id uint) error
}

type Tag struct {
	ID       uint
	Name     string
	UserID   *uint
	Approved bool
}

// Type is a category of the property type tree. Roots have no parent.
type Type struct {
	ID       uint
	Name     string
	NameFR   string
	NameAR   string
	ParentID *uint
}

// Filter combines optional predicates with AND. Nil or empty fields are
// ignored.
type Filter struct {
	// Query matches title, description, address, postal code or city.
	Query           string
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	PropertyTypeIDs []uint
	AdTypes         []vo.AdType
	MinArea         *float64
	MaxArea         *float64
	MinRooms        *int
	MinBathrooms    *int
	Furnished       *bool
	OwnershipBook   *bool
	Status          *vo.ListingStatus
	UserID          *uint
	// FavoriteOf restricts results to listings favorited by this user.
	FavoriteOf *uint
	Offset     int
	Limit      int
}
