package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
)

// Plan is a priced tier granting a feature set and a property quota.
// A plan priced at exactly zero is the free tier.
type Plan struct {
	id            uint
	name          string
	description   string
	price         decimal.Decimal
	maxProperties int
	features      *vo.FeatureSet
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPlan(name, description string, price decimal.Decimal, maxProperties int, features *vo.FeatureSet) (*Plan, error) {
	p := &Plan{
		description:   description,
		maxProperties: 1,
	}
	if err := p.UpdateName(name); err != nil {
		return nil, err
	}
	if err := p.UpdatePrice(price); err != nil {
		return nil, err
	}
	if maxProperties != 0 {
		if err := p.UpdateMaxProperties(maxProperties); err != nil {
			return nil, err
		}
	}
	p.features = features

	now := time.Now().UTC()
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

func ReconstructPlan(id uint, name, description string, price decimal.Decimal, maxProperties int,
	features *vo.FeatureSet, createdAt, updatedAt time.Time) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}

	return &Plan{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		maxProperties: maxProperties,
		features:      features,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Name() string                    { return p.name }
func (p *Plan) Description() string             { return p.description }
func (p *Plan) Price() decimal.Decimal          { return p.price }
func (p *Plan) MaxProperties() int              { return p.maxProperties }
func (p *Plan) Features() *vo.FeatureSet        { return p.features }
func (p *Plan) CreatedAt() time.Time            { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time            { return p.updatedAt }
func (p *Plan) HasFeature(f vo.FeatureTag) bool { return p.features.Has(f) }

// IsFree reports whether this plan is the zero-priced tier.
func (p *Plan) IsFree() bool {
	return p.price.IsZero()
}

// HasAnyFeatures is false when the plan carries no feature list at all.
// An empty list still counts as a list.
func (p *Plan) HasAnyFeatures() bool {
	return p.features != nil
}

func (p *Plan) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPlanNameRequired
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	p.name = name
	p.touch()
	return nil
}

func (p *Plan) UpdateDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Plan) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	p.price = price
	p.touch()
	return nil
}

func (p *Plan) UpdateMaxProperties(max int) error {
	if max < 1 {
		return ErrInvalidMaxProperties
	}
	p.maxProperties = max
	p.touch()
	return nil
}

// SetFeatures replaces the feature set. nil removes every feature.
func (p *Plan) SetFeatures(features *vo.FeatureSet) {
	p.features = features
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now().UTC()
}
