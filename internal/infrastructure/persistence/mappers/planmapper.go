package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type planMapper struct {
	logger logger.Interface
}

func NewPlanMapper(logger logger.Interface) PlanMapper {
	return &planMapper{logger: logger}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var features *vo.FeatureSet
	if len(model.Features) > 0 {
		parsed, skipped, err := vo.ParseFeatureSetJSON(model.Features)
		if err != nil {
			return nil, fmt.Errorf("failed to parse features of plan %d: %w", model.ID, err)
		}
		if len(skipped) > 0 {
			m.logger.Warnw("ignoring invalid stored plan features", "plan_id", model.ID, "skipped", skipped)
		}
		features = parsed
	}

	return subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.MaxProperties,
		features,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *planMapper) ToModel(entity *subscription.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	var features datatypes.JSON
	if entity.Features() != nil {
		raw, err := entity.Features().MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal features: %w", err)
		}
		features = datatypes.JSON(raw)
	}

	return &models.PlanModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		Price:         entity.Price(),
		MaxProperties: entity.MaxProperties(),
		Features:      features,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
