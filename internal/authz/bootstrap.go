package authz

import (
	"fmt"

	"github.com/jewelhub/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role      string
	Inherits  []string
	Policies  []Policy
	Immutable bool
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "catalog_auditor",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
			Immutable: true,
		},
		{
			Role:     constants.RoleSuperAdmin,
			Inherits: []string{"catalog_auditor"},
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
				{Object: "/jeweler/*", Action: "*"},
			},
			Immutable: true,
		},
		{
			Role: constants.RoleJewelerAdmin,
			Policies: []Policy{
				{Object: "/jeweler/*", Action: "*"},
			},
			Immutable: true,
		},
	}
}

// IsBuiltinRole 判断是否为预置角色
func IsBuiltinRole(role string) bool {
	normalized, err := NormalizeRole(role)
	if err != nil {
		return false
	}
	for _, seed := range BuiltinRoleSeeds() {
		if builtin, _ := NormalizeRole(seed.Role); builtin == normalized && seed.Immutable {
			return true
		}
	}
	return false
}

// BootstrapBuiltinRoles 初始化预置角色、继承关系与默认策略，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}
		if _, err := s.linkRole(role, roleAnchor); err != nil {
			return fmt.Errorf("create builtin role %s failed: %w", role, err)
		}
		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.linkRole(role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}
		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return ErrActionRequired
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
