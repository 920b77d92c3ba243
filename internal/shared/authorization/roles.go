package authorization

// UserRole is the account type of a marketplace user.
type UserRole string

const (
	RoleIndividual UserRole = "individual"
	RoleAgency     UserRole = "agency"
	RoleDeveloper  UserRole = "developer"
	RoleAdmin      UserRole = "admin"
	RoleEmployee   UserRole = "employee"
)

// RoleSet is a capability set of roles.
type RoleSet map[UserRole]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...UserRole) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether role is in the set.
func (s RoleSet) Contains(role UserRole) bool {
	_, ok := s[role]
	return ok
}

// PrivilegedRoles bypass subscription gating and may manage the catalog.
var PrivilegedRoles = NewRoleSet(RoleAdmin, RoleEmployee)

// SelfServiceRoles are the roles a user may pick at signup.
var SelfServiceRoles = NewRoleSet(RoleIndividual, RoleAgency, RoleDeveloper)

// AllRoles is every account type.
var AllRoles = NewRoleSet(RoleIndividual, RoleAgency, RoleDeveloper, RoleAdmin, RoleEmployee)

func (r UserRole) String() string {
	return string(r)
}

// IsPrivileged reports whether the role belongs to PrivilegedRoles.
func (r UserRole) IsPrivileged() bool {
	return PrivilegedRoles.Contains(r)
}

func (r UserRole) IsValid() bool {
	return AllRoles.Contains(r)
}

// ParseUserRole returns the role for s, falling back to individual.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleIndividual
}

// CanAccessResourceByOwnerID reports whether the caller owns the resource or is privileged.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsPrivileged() {
		return true
	}
	return userID == resourceOwnerID
}
