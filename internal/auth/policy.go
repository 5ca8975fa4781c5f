package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	ActRead  = "read"
	ActWrite = "write"
)

const screenModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies grant admins everything and operators read access plus
// write on their own notifications.
func DefaultPolicies() [][]string {
	return [][]string{
		{string(RoleAdmin), "*", "*"},
		{string(RoleUser), "pegawai", ActRead},
		{string(RoleUser), "tunjangan", ActRead},
		{string(RoleUser), "jabatan", ActRead},
		{string(RoleUser), "unitkerja", ActRead},
		{string(RoleUser), "notifikasi", ActRead},
		{string(RoleUser), "notifikasi", ActWrite},
		{string(RoleUser), "rekap", ActRead},
	}
}

// ScreenPolicy decides which role may read or write which screen.
type ScreenPolicy struct {
	enforcer *casbin.Enforcer
}

func NewScreenPolicy(policies [][]string) (*ScreenPolicy, error) {
	m, err := model.NewModelFromString(screenModel)
	if err != nil {
		return nil, fmt.Errorf("load policy model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if len(policies) > 0 {
		if _, err := enforcer.AddPolicies(policies); err != nil {
			return nil, fmt.Errorf("add policies: %w", err)
		}
	}
	return &ScreenPolicy{enforcer: enforcer}, nil
}

func (p *ScreenPolicy) Allow(role, screen, act string) (bool, error) {
	return p.enforcer.Enforce(role, screen, act)
}

// Menu filters items down to the screens role may read.
func (p *ScreenPolicy) Menu(role string, items []MenuItem) ([]MenuItem, error) {
	out := make([]MenuItem, 0, len(items))
	for _, item := range items {
		canRead, err := p.Allow(role, item.Screen, ActRead)
		if err != nil {
			return nil, err
		}
		if !canRead {
			continue
		}
		canWrite, err := p.Allow(role, item.Screen, ActWrite)
		if err != nil {
			return nil, err
		}
		item.CanWrite = canWrite
		out = append(out, item)
	}
	return out, nil
}
