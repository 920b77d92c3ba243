package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdto "github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/application/user/usecases"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers/testutil"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type mockSignUpUC struct {
	result *userdto.AuthResponse
	err    error
	cmd    usecases.SignUpCommand
}

func (m *mockSignUpUC) Execute(_ context.Context, cmd usecases.SignUpCommand) (*userdto.AuthResponse, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockSignInUC struct {
	result *userdto.AuthResponse
	err    error
}

func (m *mockSignInUC) Execute(context.Context, usecases.SignInCommand) (*userdto.AuthResponse, error) {
	return m.result, m.err
}

func TestAuthHandler_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		ucErr      error
		wantStatus int
	}{
		{
			name:       "created",
			body:       map[string]any{"full_name": "Amina", "email": "amina@example.com", "password": "s3cretpass", "user_type": "agency"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			body:       map[string]any{"full_name": "Amina", "password": "s3cretpass"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "staff role is not self service",
			body:       map[string]any{"full_name": "Amina", "email": "amina@example.com", "password": "s3cretpass", "user_type": "admin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       map[string]any{"full_name": "Amina", "email": "amina@example.com", "password": "s3cretpass"},
			ucErr:      errors.NewConflictError("email already registered"),
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signUp := &mockSignUpUC{
				result: &userdto.AuthResponse{AccessToken: "tok", TokenType: "Bearer", User: &userdto.UserResponse{ID: 1}},
				err:    tt.ucErr,
			}
			h := NewAuthHandler(signUp, &mockSignInUC{}, logger.NewNop())
			c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signup", tt.body)

			h.SignUp(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "agency", signUp.cmd.UserType)
				resp := testutil.MustParseAPIResponse(w)
				var auth userdto.AuthResponse
				require.NoError(t, json.Unmarshal(resp.Data, &auth))
				assert.Equal(t, "tok", auth.AccessToken)
			}
		})
	}
}

func TestAuthHandler_SignIn(t *testing.T) {
	h := NewAuthHandler(&mockSignUpUC{}, &mockSignInUC{err: errors.NewUnauthorizedError("invalid email or password")}, logger.NewNop())
	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/signin", map[string]string{"email": "a@example.com", "password": "wrong"})

	h.SignIn(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := testutil.MustParseAPIResponse(w)
	assert.Equal(t, "invalid email or password", resp.Error.Message)
}

func TestAuthHandler_SignInMalformedBody(t *testing.T) {
	h := NewAuthHandler(&mockSignUpUC{}, &mockSignInUC{}, logger.NewNop())
	c, w := testutil.NewRawContext(http.MethodPost, "/api/auth/signin", "{")

	h.SignIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
