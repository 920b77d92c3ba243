package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// IdentityResolver loads the account a token identifier refers to.
type IdentityResolver interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

type AuthMiddleware struct {
	verifier   TokenVerifier
	identities IdentityResolver
	logger     logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, identities IdentityResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   verifier,
		identities: identities,
		logger:     logger,
	}
}

// RequireAuth resolves the bearer token to a user and stores the user id and
// role in the context. The role always comes from the stored account, never
// from the token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Debugw("failed to verify token", "error", err)
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			return
		}

		u, err := m.identities.GetByEmail(c.Request.Context(), claims.Identifier)
		if err != nil {
			m.logger.Errorw("failed to resolve token identity", "error", err)
			utils.AbortWithError(c, errors.NewInternalError("failed to resolve identity"))
			return
		}
		if u == nil {
			utils.AbortWithError(c, errors.NewUnauthorizedError("user no longer exists"))
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserRole, u.Role().String())
		c.Set(constants.ContextKeyUserEmail, u.Email().String())

		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err == nil {
			u, lookupErr := m.identities.GetByEmail(c.Request.Context(), claims.Identifier)
			if lookupErr != nil {
				m.logger.Warnw("failed to resolve optional identity", "error", lookupErr)
			} else if u != nil {
				c.Set(constants.ContextKeyUserID, u.ID())
				c.Set(constants.ContextKeyUserRole, u.Role().String())
				c.Set(constants.ContextKeyUserEmail, u.Email().String())
			}
		}

		c.Next()
	}
}

// bearerToken reads the Authorization header, falling back to the token
// query parameter that browsers use for websocket upgrades.
func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		if token := c.Query("token"); token != "" {
			return token, nil
		}
		return "", errors.NewUnauthorizedError("missing authorization token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.NewUnauthorizedError("invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}
