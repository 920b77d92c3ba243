package permission

import (
	"fmt"

	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Resources guarded by staff permissions.
const (
	ResourcePlans         = "plans"
	ResourceSubscriptions = "subscriptions"
	ResourceTickets       = "tickets"
	ResourceUsers         = "users"
	ResourceCatalog       = "catalog"
	ResourceAnalytics     = "analytics"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
	ActionAll   = "*"
)

// DefaultPolicies is the baseline rule set written on first start. Admins
// hold everything; employees run the back office but cannot create or
// delete accounts.
var DefaultPolicies = [][]string{
	{authorization.RoleAdmin.String(), ResourcePlans, ActionAll},
	{authorization.RoleAdmin.String(), ResourceSubscriptions, ActionAll},
	{authorization.RoleAdmin.String(), ResourceTickets, ActionAll},
	{authorization.RoleAdmin.String(), ResourceUsers, ActionAll},
	{authorization.RoleAdmin.String(), ResourceCatalog, ActionAll},
	{authorization.RoleAdmin.String(), ResourceAnalytics, ActionAll},

	{authorization.RoleEmployee.String(), ResourcePlans, ActionWrite},
	{authorization.RoleEmployee.String(), ResourceSubscriptions, ActionRead},
	{authorization.RoleEmployee.String(), ResourceSubscriptions, ActionWrite},
	{authorization.RoleEmployee.String(), ResourceTickets, ActionWrite},
	{authorization.RoleEmployee.String(), ResourceUsers, ActionRead},
	{authorization.RoleEmployee.String(), ResourceCatalog, ActionWrite},
	{authorization.RoleEmployee.String(), ResourceAnalytics, ActionRead},
}

// SeedDefaultPolicies adds the missing default rules. Rules an operator
// removed are added back; rules an operator added are left alone.
func SeedDefaultPolicies(e *Enforcer, log logger.Interface) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range DefaultPolicies {
		has, err := e.enforcer.HasPolicy(policy[0], policy[1], policy[2])
		if err != nil {
			return fmt.Errorf("failed to check policy %v: %w", policy, err)
		}
		if has {
			continue
		}
		if _, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add default policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
		added++
	}

	log.Infow("default permissions seeded", "added", added)
	return nil
}
