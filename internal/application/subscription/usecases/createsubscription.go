package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/domain/subscription"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	UserID         uint
	PlanID         uint
	PaymentMethod  string
	PaymentDetails string
	ProofOfPayment string
	// StartDate defaults to now.
	StartDate *time.Time
	// PeriodMonths defaults to 1.
	PeriodMonths int
}

// CreateSubscriptionUseCase records a paid-plan request. The subscription
// stays inactive until staff confirm the payment.
type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	now              func() time.Time
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		now:              biztime.NowUTC,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	method := vo.PaymentMethod(cmd.PaymentMethod)
	if !method.IsValid() {
		return nil, errors.NewValidationError("invalid payment method", cmd.PaymentMethod)
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	startDate := uc.now()
	if cmd.StartDate != nil {
		startDate = cmd.StartDate.UTC()
	}
	period := cmd.PeriodMonths
	if period == 0 {
		period = 1
	}

	sub, err := subscription.NewSubscriptionRequest(
		cmd.UserID,
		plan.ID(),
		method,
		cmd.PaymentDetails,
		cmd.ProofOfPayment,
		startDate,
		period,
	)
	if err != nil {
		return nil, errors.NewValidationError("invalid subscription", err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription requested",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"plan_id", sub.PlanID(),
		"payment_method", method.String(),
		"end_date", sub.EndDate(),
	)

	return dto.ToSubscriptionDTO(sub, plan, nil), nil
}
