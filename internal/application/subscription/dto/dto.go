package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/mapper"
)

type PlanDTO struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	MaxProperties int             `json:"max_properties"`
	// Features is null when the plan grants nothing.
	Features  []string  `json:"features"`
	IsFree    bool      `json:"is_free"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserSummaryDTO struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type SubscriptionDTO struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"user_id"`
	PlanID         uint            `json:"plan_id"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	PaymentMethod  *string         `json:"payment_method"`
	PaymentDetails string          `json:"payment_details,omitempty"`
	ProofOfPayment string          `json:"proof_of_payment,omitempty"`
	Plan           *PlanDTO        `json:"plan,omitempty"`
	User           *UserSummaryDTO `json:"user,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToPlanDTO(plan *subscription.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}
	return &PlanDTO{
		ID:            plan.ID(),
		Name:          plan.Name(),
		Description:   plan.Description(),
		Price:         plan.Price(),
		MaxProperties: plan.MaxProperties(),
		Features:      plan.Features().Strings(),
		IsFree:        plan.IsFree(),
		CreatedAt:     plan.CreatedAt(),
		UpdatedAt:     plan.UpdatedAt(),
	}
}

func ToPlanDTOList(plans []*subscription.Plan) []*PlanDTO {
	if len(plans) == 0 {
		return []*PlanDTO{}
	}
	return mapper.MapSlice(plans, ToPlanDTO)
}

func ToUserSummaryDTO(u *user.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:          u.ID(),
		FullName:    u.FullName(),
		Email:       u.Email().String(),
		PhoneNumber: u.PhoneNumber(),
	}
}

// ToSubscriptionDTO converts a subscription. plan and owner are optional
// enrichments and may be nil.
func ToSubscriptionDTO(sub *subscription.Subscription, plan *subscription.Plan, owner *user.User) *SubscriptionDTO {
	if sub == nil {
		return nil
	}

	result := &SubscriptionDTO{
		ID:             sub.ID(),
		UserID:         sub.UserID(),
		PlanID:         sub.PlanID(),
		Status:         sub.Status().String(),
		StartDate:      sub.StartDate(),
		EndDate:        sub.EndDate(),
		PaymentDetails: sub.PaymentDetails(),
		ProofOfPayment: sub.ProofOfPayment(),
		Plan:           ToPlanDTO(plan),
		User:           ToUserSummaryDTO(owner),
		CreatedAt:      sub.CreatedAt(),
		UpdatedAt:      sub.UpdatedAt(),
	}
	if method := sub.PaymentMethod(); method != nil {
		s := method.String()
		result.PaymentMethod = &s
	}
	return result
}
