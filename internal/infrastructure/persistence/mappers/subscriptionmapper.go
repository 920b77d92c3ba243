package mappers

import (
	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var method *vo.PaymentMethod
	if model.PaymentMethod != nil {
		pm := vo.PaymentMethod(*model.PaymentMethod)
		method = &pm
	}

	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		vo.SubscriptionStatus(model.Status),
		model.StartDate,
		model.EndDate,
		method,
		model.PaymentDetails,
		model.ProofOfPayment,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel derives ActiveUserID from the status so the uniqueness index always
// reflects the aggregate.
func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}

	model := &models.SubscriptionModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		PlanID:         entity.PlanID(),
		Status:         entity.Status().String(),
		StartDate:      entity.StartDate(),
		EndDate:        entity.EndDate(),
		PaymentDetails: entity.PaymentDetails(),
		ProofOfPayment: entity.ProofOfPayment(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
	if pm := entity.PaymentMethod(); pm != nil {
		s := pm.String()
		model.PaymentMethod = &s
	}
	if entity.IsActive() {
		userID := entity.UserID()
		model.ActiveUserID = &userID
	}
	return model
}

func (m *subscriptionMapper) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, model := range subModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
