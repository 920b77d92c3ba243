package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/application/subscription/services"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// Context keys set by the gate for admitted, non-privileged callers.
const (
	ContextKeySubscription = "subscription"
	ContextKeyPlan         = "subscription_plan"
)

// AccessChecker decides whether a caller may use the given features.
type AccessChecker interface {
	Check(ctx context.Context, caller services.Caller, required ...vo.FeatureTag) (*services.Decision, error)
}

type SubscriptionGateMiddleware struct {
	gate   AccessChecker
	logger logger.Interface
}

func NewSubscriptionGateMiddleware(gate AccessChecker, logger logger.Interface) *SubscriptionGateMiddleware {
	return &SubscriptionGateMiddleware{
		gate:   gate,
		logger: logger,
	}
}

// RequireFeatures admits the request only when the caller's subscription
// grants every listed feature. It must run after RequireAuth.
func (m *SubscriptionGateMiddleware) RequireFeatures(features ...vo.FeatureTag) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(constants.ContextKeyUserID)
		if userID == 0 {
			utils.AbortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}
		caller := services.Caller{
			ID:   userID,
			Role: authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
		}

		decision, err := m.gate.Check(c.Request.Context(), caller, features...)
		if err != nil {
			m.logger.Errorw("subscription gate failed", "error", err, "user_id", userID, "features", features)
			utils.AbortWithError(c, errors.NewInternalError("failed to check subscription"))
			return
		}

		if !decision.Admitted {
			m.logger.Infow("subscription gate denied request",
				"user_id", userID,
				"reason_code", decision.Code,
				"path", c.FullPath(),
			)
			utils.AbortWithError(c, errors.NewDeniedError(decision.Code, decision.Reason))
			return
		}

		if decision.Subscription != nil {
			c.Set(ContextKeySubscription, decision.Subscription)
			c.Set(ContextKeyPlan, decision.Plan)
		}
		c.Next()
	}
}
