package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type UpdateSubscriptionCommand struct {
	ID             uint
	PaymentDetails *string
	Status         *string
}

// UpdateSubscriptionUseCase is the staff-side edit of a subscription, used
// to confirm a payment by activating the record.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.ID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	previous := sub.Status()

	if cmd.PaymentDetails != nil {
		sub.UpdatePaymentDetails(*cmd.PaymentDetails)
	}
	if cmd.Status != nil {
		target := vo.SubscriptionStatus(*cmd.Status)
		if !target.IsValid() {
			return nil, errors.NewValidationError("invalid status", *cmd.Status)
		}
		if err := sub.TransitionTo(target); err != nil {
			return nil, errors.NewValidationError("invalid status transition", err.Error())
		}
	}

	if err := uc.subscriptionRepo.Update(ctx, sub, previous); err != nil {
		switch {
		case stderrors.Is(err, subscription.ErrActiveSubscriptionExists):
			return nil, errors.NewConflictError("user already has an active subscription")
		case stderrors.Is(err, subscription.ErrSubscriptionModified):
			return nil, errors.NewConflictError("subscription status changed, reload and retry")
		}
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.ID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription updated",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"from_status", previous.String(),
		"to_status", sub.Status().String(),
	)

	return dto.ToSubscriptionDTO(sub, nil, nil), nil
}
