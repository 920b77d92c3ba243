package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/infrastructure/ratelimit"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// RateLimitMiddleware limits requests per client IP and route.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limit   ratelimit.Limit
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, limit ratelimit.Limit, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limit:   limit,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.FullPath(), c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limit)
		if err != nil {
			// An unavailable Redis must not lock everyone out of sign-in.
			m.logger.Warnw("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.FullPath())
			utils.AbortWithError(c, errors.NewRateLimitError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
