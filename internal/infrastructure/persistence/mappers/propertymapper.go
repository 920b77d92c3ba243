package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/darna-inc/darna/internal/domain/property"
	vo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
)

type PropertyMapper interface {
	ToEntity(model *models.PropertyModel) (*property.Property, error)
	ToModel(entity *property.Property) (*models.PropertyModel, error)
	ToEntities(models []*models.PropertyModel) ([]*property.Property, error)
}

type propertyMapper struct{}

func NewPropertyMapper() PropertyMapper {
	return &propertyMapper{}
}

func (m *propertyMapper) ToEntity(model *models.PropertyModel) (*property.Property, error) {
	if model == nil {
		return nil, nil
	}

	images, err := decodeStrings(model.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode images of property %d: %w", model.ID, err)
	}
	tags, err := decodeStrings(model.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tags of property %d: %w", model.ID, err)
	}

	var rentPeriod *vo.RentPeriod
	if model.RentPeriod != nil {
		rp := vo.RentPeriod(*model.RentPeriod)
		rentPeriod = &rp
	}

	attrs := property.Attributes{
		Title:          model.Title,
		Description:    model.Description,
		PropertyTypeID: model.PropertyTypeID,
		AdType:         vo.AdType(model.AdType),
		Status:         vo.ListingStatus(model.Status),
		RentPeriod:     rentPeriod,
		Condition:      model.Condition,
		Price:          model.Price,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Address:        model.Address,
		City:           model.City,
		PostalCode:     model.PostalCode,
		AreaSqMeters:   model.AreaSqMeters,
		NumRooms:       model.NumRooms,
		Bathrooms:      model.Bathrooms,
		Furnished:      model.Furnished,
		OwnershipBook:  model.OwnershipBook,
		Images:         images,
		Tags:           tags,
	}

	return property.ReconstructProperty(model.ID, model.UserID, model.Slug, attrs, model.Views, model.CreatedAt, model.UpdatedAt)
}

func (m *propertyMapper) ToModel(entity *property.Property) (*models.PropertyModel, error) {
	if entity == nil {
		return nil, nil
	}
	attrs := entity.Attributes()

	images, err := json.Marshal(attrs.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	tags, err := json.Marshal(attrs.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	var rentPeriod *string
	if attrs.RentPeriod != nil {
		s := string(*attrs.RentPeriod)
		rentPeriod = &s
	}

	return &models.PropertyModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		PropertyTypeID: attrs.PropertyTypeID,
		Title:          attrs.Title,
		Slug:           entity.Slug(),
		Description:    attrs.Description,
		AdType:         string(attrs.AdType),
		Status:         string(attrs.Status),
		RentPeriod:     rentPeriod,
		Condition:      attrs.Condition,
		Price:          attrs.Price,
		Latitude:       attrs.Latitude,
		Longitude:      attrs.Longitude,
		Address:        attrs.Address,
		City:           attrs.City,
		PostalCode:     attrs.PostalCode,
		AreaSqMeters:   attrs.AreaSqMeters,
		NumRooms:       attrs.NumRooms,
		Bathrooms:      attrs.Bathrooms,
		Furnished:      attrs.Furnished,
		OwnershipBook:  attrs.OwnershipBook,
		Images:         datatypes.JSON(images),
		Tags:           datatypes.JSON(tags),
		Views:          entity.Views(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *propertyMapper) ToEntities(propertyModels []*models.PropertyModel) ([]*property.Property, error) {
	entities := make([]*property.Property, 0, len(propertyModels))
	for _, model := range propertyModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func decodeStrings(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
