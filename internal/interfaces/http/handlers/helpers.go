package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// caller is the authenticated identity placed in the context by the auth middleware.
type caller struct {
	ID   uint
	Role authorization.UserRole
}

func currentCaller(c *gin.Context) (caller, error) {
	id := c.GetUint(constants.ContextKeyUserID)
	if id == 0 {
		return caller{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return caller{
		ID:   id,
		Role: authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
	}, nil
}

// bindJSON binds the body and converts binding failures into validation errors.
func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return utils.TranslateValidationError(err)
	}
	return nil
}

func bindQuery(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindQuery(target); err != nil {
		return utils.TranslateValidationError(err)
	}
	return nil
}

func parseIDParam(c *gin.Context, key, resource string) (uint, error) {
	id, ok := utils.ParseUintParam(c, key)
	if !ok {
		return 0, errors.NewValidationError("invalid " + resource + " id")
	}
	return id, nil
}
