package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/user"
	"github.com/darna-inc/darna/internal/shared/authorization"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// memUsers is an in-memory user.Repository keyed by email.
type memUsers struct {
	byEmail   map[string]*user.User
	nextID    uint
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*user.User{}}
}

func (m *memUsers) Create(_ context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.byEmail[u.Email().String()] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range m.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, _ := m.GetByID(ctx, id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return m.byEmail[strings.ToLower(email)], nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[strings.ToLower(email)]
	return ok, nil
}

// plainHasher prefixes the password so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }
func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct {
	issued []string
}

func (f *fakeTokens) IssueToken(identifier string, role authorization.UserRole) (string, int64, error) {
	f.issued = append(f.issued, identifier+"|"+role.String())
	return "token-for-" + identifier, 3600, nil
}

func TestSignUpUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		cmd       SignUpCommand
		seed      bool
		wantCheck func(error) bool
	}{
		{
			name: "agency signup",
			cmd:  SignUpCommand{FullName: "Immo Atlas", Email: "Contact@Atlas.dz", Password: "atlas2024", UserType: "agency"},
		},
		{
			name: "defaults to individual",
			cmd:  SignUpCommand{FullName: "Nadia", Email: "nadia@example.dz", Password: "nadia2024"},
		},
		{
			name:      "privileged role refused",
			cmd:       SignUpCommand{FullName: "Eve", Email: "eve@example.dz", Password: "eve12345", UserType: "admin"},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "weak password",
			cmd:       SignUpCommand{FullName: "Nadia", Email: "nadia@example.dz", Password: "short"},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "duplicate email",
			cmd:       SignUpCommand{FullName: "Nadia", Email: "taken@example.dz", Password: "nadia2024"},
			seed:      true,
			wantCheck: apperrors.IsConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMemUsers()
			tokens := &fakeTokens{}
			uc := NewSignUpUseCase(users, plainHasher{}, tokens, logger.NewNop())
			if tt.seed {
				_, err := uc.Execute(context.Background(), SignUpCommand{
					FullName: "First", Email: "taken@example.dz", Password: "first2024",
				})
				require.NoError(t, err)
			}

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantCheck != nil {
				assert.True(t, tt.wantCheck(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(tt.cmd.Email), result.User.Email)
			assert.Equal(t, "token-for-"+strings.ToLower(tt.cmd.Email), result.AccessToken)
			assert.Equal(t, "Bearer", result.TokenType)
			if tt.cmd.UserType == "" {
				assert.Equal(t, "individual", result.User.UserType)
			}
		})
	}
}

func TestSignInUseCase_Execute(t *testing.T) {
	users := newMemUsers()
	tokens := &fakeTokens{}
	_, err := NewSignUpUseCase(users, plainHasher{}, tokens, logger.NewNop()).Execute(context.Background(), SignUpCommand{
		FullName: "Yacine", Email: "yacine@example.dz", Password: "yacine2024", UserType: "developer",
	})
	require.NoError(t, err)

	uc := NewSignInUseCase(users, plainHasher{}, tokens, logger.NewNop())

	t.Run("valid credentials", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), SignInCommand{Email: "yacine@example.dz", Password: "yacine2024"})
		require.NoError(t, err)
		assert.Equal(t, "developer", result.User.UserType)
		assert.Contains(t, tokens.issued, "yacine@example.dz|developer")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SignInCommand{Email: "yacine@example.dz", Password: "nope12345"})
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SignInCommand{Email: "ghost@example.dz", Password: "yacine2024"})
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	t.Run("staff only", func(t *testing.T) {
		users := newMemUsers()
		uc := NewCreateUserUseCase(users, plainHasher{}, authorization.PrivilegedRoles, logger.NewNop())

		result, err := uc.Execute(context.Background(), CreateUserCommand{
			FullName: "Ops", Email: "ops@darna.dz", Password: "opsadmin1", Role: authorization.RoleEmployee,
		})
		require.NoError(t, err)
		assert.Equal(t, "employee", result.UserType)

		_, err = uc.Execute(context.Background(), CreateUserCommand{
			FullName: "Agent", Email: "agent@darna.dz", Password: "agent1234", Role: authorization.RoleAgency,
		})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("back office", func(t *testing.T) {
		users := newMemUsers()
		uc := NewCreateUserUseCase(users, plainHasher{}, authorization.AllRoles, logger.NewNop())

		result, err := uc.Execute(context.Background(), CreateUserCommand{
			FullName: "Agence Atlas", Email: "atlas@darna.dz", Password: "atlas2024", PhoneNumber: "0550", Role: authorization.RoleAgency,
		})
		require.NoError(t, err)
		assert.Equal(t, "agency", result.UserType)
		assert.Equal(t, "0550", result.PhoneNumber)

		_, err = uc.Execute(context.Background(), CreateUserCommand{
			FullName: "Root", Email: "root@darna.dz", Password: "root12345", Role: authorization.UserRole("root"),
		})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestGetUserUseCase_Execute(t *testing.T) {
	users := newMemUsers()
	_, err := NewCreateUserUseCase(users, plainHasher{}, authorization.PrivilegedRoles, logger.NewNop()).Execute(context.Background(), CreateUserCommand{
		FullName: "Ops", Email: "ops@darna.dz", Password: "opsadmin1", Role: authorization.RoleAdmin,
	})
	require.NoError(t, err)

	uc := NewGetUserUseCase(users, logger.NewNop())
	found, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ops@darna.dz", found.Email)

	_, err = uc.Execute(context.Background(), 42)
	assert.True(t, apperrors.IsNotFoundError(err))
}
