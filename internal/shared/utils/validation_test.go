package utils

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/shared/errors"
)

type signupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(signupInput{Email: "nope", Password: "short"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "email must be a valid email address")
	assert.Contains(t, appErr.Details, "password must be at least 8 characters long")

	assert.NoError(t, ValidateStruct(signupInput{Email: "a@b.dz", Password: "long-enough"}))
}

func TestTranslateValidationError_NonValidator(t *testing.T) {
	err := TranslateValidationError(stderrors.New("unexpected EOF"))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}
