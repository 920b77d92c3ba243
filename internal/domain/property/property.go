package property

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
)

// Attributes are the owner-editable fields of a listing.
type Attributes struct {
	Title          string
	Description    string
	PropertyTypeID uint
	AdType         vo.AdType
	Status         vo.ListingStatus
	RentPeriod     *vo.RentPeriod
	Condition      int
	Price          decimal.Decimal
	Latitude       *float64
	Longitude      *float64
	Address        string
	City           string
	PostalCode     string
	AreaSqMeters   *float64
	NumRooms       *int
	Bathrooms      *int
	Furnished      bool
	OwnershipBook  *bool
	Images         []string
	Tags           []string
}

func (a *Attributes) validate() error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(a.Title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if a.PropertyTypeID == 0 {
		return fmt.Errorf("property type is required")
	}
	if strings.TrimSpace(a.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("city is required")
	}
	if a.Price.IsNegative() {
		return fmt.Errorf("price must be positive")
	}
	if a.Condition == 0 {
		a.Condition = 3
	}
	if a.Condition < 1 || a.Condition > 5 {
		return fmt.Errorf("condition must be between 1 and 5")
	}
	if a.AdType == "" {
		a.AdType = vo.AdTypeSale
	}
	if !a.AdType.IsValid() {
		return fmt.Errorf("invalid ad type: %s", a.AdType)
	}
	if a.Status == "" {
		a.Status = vo.ListingAvailable
	}
	if !a.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if a.RentPeriod != nil && !a.RentPeriod.IsValid() {
		return fmt.Errorf("invalid rent period: %s", *a.RentPeriod)
	}
	if a.AreaSqMeters != nil && *a.AreaSqMeters < 0 {
		return fmt.Errorf("area cannot be negative")
	}
	if a.Images == nil {
		a.Images = []string{}
	}
	a.Tags = NormalizeTags(a.Tags)
	return nil
}

// Property is a real-estate listing owned by a user.
type Property struct {
	id        uint
	userID    uint
	slug      string
	attrs     Attributes
	views     int
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(userID uint, slug string, attrs Attributes) (*Property, error) {
	if userID == 0 {
		return nil, fmt.Errorf("owner is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Property{
		userID:    userID,
		slug:      slug,
		attrs:     attrs,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProperty(id, userID uint, slug string, attrs Attributes, views int, createdAt, updatedAt time.Time) (*Property, error) {
	if id == 0 {
		return nil, fmt.Errorf("property ID cannot be zero")
	}
	if attrs.Images == nil {
		attrs.Images = []string{}
	}
	if attrs.Tags == nil {
		attrs.Tags = []string{}
	}
	return &Property{
		id:        id,
		userID:    userID,
		slug:      slug,
		attrs:     attrs,
		views:     views,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Property) ID() uint               { return p.id }
func (p *Property) UserID() uint           { return p.userID }
func (p *Property) Slug() string           { return p.slug }
func (p *Property) Attributes() Attributes { return p.attrs }
func (p *Property) Views() int             { return p.views }
func (p *Property) CreatedAt() time.Time   { return p.createdAt }
func (p *Property) UpdatedAt() time.Time   { return p.updatedAt }

func (p *Property) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("property ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("property ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Property) IsOwnedBy(userID uint) bool {
	return p.userID == userID
}

// Apply replaces the editable fields after validating them. The slug is
// regenerated by the caller when the title changes.
func (p *Property) Apply(attrs Attributes, slug string) error {
	if err := attrs.validate(); err != nil {
		return err
	}
	p.attrs = attrs
	if slug != "" {
		p.slug = slug
	}
	p.updatedAt = time.Now().UTC()
	return nil
}
