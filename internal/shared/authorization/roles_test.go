package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsPrivileged(t *testing.T) {
	tests := []struct {
		role UserRole
		want bool
	}{
		{RoleAdmin, true},
		{RoleEmployee, true},
		{RoleIndividual, false},
		{RoleAgency, false},
		{RoleDeveloper, false},
		{UserRole("root"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsPrivileged())
		})
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAgency, ParseUserRole("agency"))
	assert.Equal(t, RoleIndividual, ParseUserRole("superuser"))
}

func TestCanAccessResourceByOwnerID(t *testing.T) {
	assert.True(t, CanAccessResourceByOwnerID(4, RoleAgency, 4))
	assert.False(t, CanAccessResourceByOwnerID(4, RoleAgency, 5))
	assert.True(t, CanAccessResourceByOwnerID(1, RoleEmployee, 5))
}
