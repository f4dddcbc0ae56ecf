package authz

import (
	"fmt"
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

// rbacModel grants ADMIN every permission and resolves the rest through the
// role grouping.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == "ADMIN" || (g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act)
`

// Enforcer answers whether a role holds a permission. The policy is built
// once from user.RolePermissions and never changes afterwards.
type Enforcer struct {
	enforcer *casbin.Enforcer
}

func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	policies := 0
	for role, perms := range user.RolePermissions {
		for _, p := range perms {
			if _, err := e.AddPolicy(string(role), p.Resource(), p.Action()); err != nil {
				return nil, fmt.Errorf("add policy %s %s: %w", role, p, err)
			}
			policies++
		}
	}
	for role, parents := range user.RoleInherits {
		for _, parent := range parents {
			if _, err := e.AddGroupingPolicy(string(role), string(parent)); err != nil {
				return nil, fmt.Errorf("add grouping %s -> %s: %w", role, parent, err)
			}
		}
	}

	slog.Info("Authorization policy loaded", "policies", policies, "roles", len(user.RolePermissions))
	return &Enforcer{enforcer: e}, nil
}

// Allowed reports whether role holds permission p.
func (a *Enforcer) Allowed(role user.Role, p user.Permission) (bool, error) {
	return a.enforcer.Enforce(string(role), p.Resource(), p.Action())
}

// AllowedAny reports whether role holds at least one of perms.
func (a *Enforcer) AllowedAny(role user.Role, perms ...user.Permission) (bool, error) {
	for _, p := range perms {
		ok, err := a.Allowed(role, p)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
