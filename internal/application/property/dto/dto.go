package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/domain/property"
	vo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
)

// PropertyRequest is the body of create and update calls. Update replaces
// every editable field.
type PropertyRequest struct {
	Title          string          `json:"title" binding:"required,max=200"`
	Description    string          `json:"description"`
	PropertyTypeID uint            `json:"property_type_id" binding:"required"`
	AdType         string          `json:"ad_type" binding:"omitempty,oneof=sale rent"`
	Status         string          `json:"status" binding:"omitempty,oneof=available sold rented"`
	RentPeriod     *string         `json:"rent_period" binding:"omitempty,oneof=daily monthly yearly"`
	Condition      int             `json:"condition" binding:"omitempty,min=1,max=5"`
	Price          decimal.Decimal `json:"price"`
	Latitude       *float64        `json:"latitude" binding:"omitempty,latitude"`
	Longitude      *float64        `json:"longitude" binding:"omitempty,longitude"`
	Address        string          `json:"address" binding:"required"`
	City           string          `json:"city" binding:"required"`
	PostalCode     string          `json:"postal_code"`
	Area           *float64        `json:"area" binding:"omitempty,gte=0"`
	NumRooms       *int            `json:"num_rooms" binding:"omitempty,gte=0"`
	Bathrooms      *int            `json:"bathrooms" binding:"omitempty,gte=0"`
	Furnished      bool            `json:"furnished"`
	OwnershipBook  *bool           `json:"ownership_book"`
	Images         []string        `json:"images" binding:"omitempty,dive,url"`
	Tags           []string        `json:"tags" binding:"omitempty,dive,max=50"`
}

func (r *PropertyRequest) ToAttributes() property.Attributes {
	attrs := property.Attributes{
		Title:          r.Title,
		Description:    r.Description,
		PropertyTypeID: r.PropertyTypeID,
		AdType:         vo.AdType(r.AdType),
		Status:         vo.ListingStatus(r.Status),
		Condition:      r.Condition,
		Price:          r.Price,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Address:        r.Address,
		City:           r.City,
		PostalCode:     r.PostalCode,
		AreaSqMeters:   r.Area,
		NumRooms:       r.NumRooms,
		Bathrooms:      r.Bathrooms,
		Furnished:      r.Furnished,
		OwnershipBook:  r.OwnershipBook,
		Images:         r.Images,
		Tags:           r.Tags,
	}
	if r.RentPeriod != nil {
		period := vo.RentPeriod(*r.RentPeriod)
		attrs.RentPeriod = &period
	}
	return attrs
}

type PropertyResponse struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PropertyTypeID uint            `json:"property_type_id"`
	AdType         string          `json:"ad_type"`
	Status         string          `json:"status"`
	RentPeriod     *string         `json:"rent_period,omitempty"`
	Condition      int             `json:"condition"`
	Price          decimal.Decimal `json:"price"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	PostalCode     string          `json:"postal_code,omitempty"`
	Area           *float64        `json:"area,omitempty"`
	NumRooms       *int            `json:"num_rooms,omitempty"`
	Bathrooms      *int            `json:"bathrooms,omitempty"`
	Furnished      bool            `json:"furnished"`
	OwnershipBook  *bool           `json:"ownership_book,omitempty"`
	Images         []string        `json:"images"`
	Tags           []string        `json:"tags"`
	Views          int             `json:"views"`
	IsFavorite     bool            `json:"is_favorite"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToPropertyResponse(p *property.Property, favorite bool) *PropertyResponse {
	if p == nil {
		return nil
	}
	a := p.Attributes()
	resp := &PropertyResponse{
		ID:             p.ID(),
		UserID:         p.UserID(),
		Slug:           p.Slug(),
		Title:          a.Title,
		Description:    a.Description,
		PropertyTypeID: a.PropertyTypeID,
		AdType:         string(a.AdType),
		Status:         string(a.Status),
		Condition:      a.Condition,
		Price:          a.Price,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Address:        a.Address,
		City:           a.City,
		PostalCode:     a.PostalCode,
		Area:           a.AreaSqMeters,
		NumRooms:       a.NumRooms,
		Bathrooms:      a.Bathrooms,
		Furnished:      a.Furnished,
		OwnershipBook:  a.OwnershipBook,
		Images:         a.Images,
		Tags:           a.Tags,
		Views:          p.Views(),
		IsFavorite:     favorite,
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
	if a.RentPeriod != nil {
		period := string(*a.RentPeriod)
		resp.RentPeriod = &period
	}
	return resp
}

type PropertyTypeResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	NameFR   string `json:"name_fr"`
	NameAR   string `json:"name_ar"`
	ParentID *uint  `json:"parent_id"`
}

func ToPropertyTypeResponse(t *property.Type) *PropertyTypeResponse {
	return &PropertyTypeResponse{
		ID:       t.ID,
		Name:     t.Name,
		NameFR:   t.NameFR,
		NameAR:   t.NameAR,
		ParentID: t.ParentID,
	}
}

type AreaRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FavoriteResponse struct {
	PropertyID uint `json:"property_id"`
	Favorited  bool `json:"favorited"`
}

type TagResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	UserID   *uint  `json:"user_id,omitempty"`
	Approved bool   `json:"approved"`
}

func ToTagResponse(t *property.Tag) *TagResponse {
	return &TagResponse{
		ID:       t.ID,
		Name:     t.Name,
		UserID:   t.UserID,
		Approved: t.Approved,
	}
}
