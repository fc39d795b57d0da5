package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	rolePrefix      = "role:"
	// 所有角色挂在锚点下，空角色也能被列出
	roleAnchor    = "role:__anchor__"
	subjectPrefix = "credential:"
)

// 请求主体可以是凭证或角色；对象按路由模板匹配，"*" 动作放行全部方法
const catalogRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var (
	// ErrRoleImmutable 预置角色不可删除
	ErrRoleImmutable = errors.New("builtin role is immutable")
	// ErrUnavailable 授权服务未初始化
	ErrUnavailable = errors.New("authz service unavailable")
	// ErrRoleRequired 角色名为空或为保留名
	ErrRoleRequired = errors.New("role is required")
	// ErrActionRequired 策略动作为空
	ErrActionRequired = errors.New("action is required")
)

// Policy 权限策略
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service 目录后台的 Casbin 授权服务，策略持久化在 casbin_rule 表
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(catalogRBACModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return ErrUnavailable
	}
	return nil
}

// Enforce 执行授权判断
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.enforcer.Enforce(strings.TrimSpace(sub), NormalizeObject(obj), NormalizeAction(act))
}

// EnforceRole 按凭证角色判定授权
func (s *Service) EnforceRole(role, obj, act string) (bool, error) {
	subject, err := NormalizeRole(role)
	if err != nil {
		return false, err
	}
	return s.Enforce(subject, obj, act)
}

// EnforceCredential 凭证直连策略或其角色策略任一允许即可
func (s *Service) EnforceCredential(credentialID, role, obj, act string) (bool, error) {
	if strings.TrimSpace(credentialID) != "" {
		allowed, err := s.Enforce(SubjectForCredential(credentialID), obj, act)
		if err != nil || allowed {
			return allowed, err
		}
	}
	return s.EnforceRole(role, obj, act)
}

// EnsureRole 确保角色存在，返回带前缀的角色名
func (s *Service) EnsureRole(role string) (string, error) {
	normalized, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if normalized == roleAnchor {
		return "", ErrRoleRequired
	}
	if err := s.ready(); err != nil {
		return "", err
	}
	if _, err := s.linkRole(normalized, roleAnchor); err != nil {
		return "", fmt.Errorf("create role failed: %w", err)
	}
	return normalized, nil
}

// linkRole 添加 g 关系，已存在时返回 false
func (s *Service) linkRole(role, parent string) (bool, error) {
	exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, parent)
	if err != nil || exists {
		return false, err
	}
	return s.enforcer.AddNamedGroupingPolicy("g", role, parent)
}

// ListRoles 列出全部角色（排序后）
func (s *Service) ListRoles() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 0)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}
	seen := make(map[string]struct{})
	for _, rule := range rules {
		for _, name := range rule {
			if strings.HasPrefix(name, rolePrefix) && name != roleAnchor {
				seen[name] = struct{}{}
			}
		}
	}
	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles, nil
}

// DeleteRole 删除自定义角色及其策略与继承关系
func (s *Service) DeleteRole(role string) error {
	normalized, err := NormalizeRole(role)
	if err != nil {
		return err
	}
	if normalized == roleAnchor || IsBuiltinRole(normalized) {
		return ErrRoleImmutable
	}
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(0, normalized); err != nil {
		return fmt.Errorf("remove role policy failed: %w", err)
	}
	for _, field := range []int{0, 1} {
		if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", field, normalized); err != nil {
			return fmt.Errorf("remove role link failed: %w", err)
		}
	}
	return nil
}

// GrantRolePolicy 为角色授予策略，角色不存在时自动创建
func (s *Service) GrantRolePolicy(role, object, action string) error {
	normalizedRole, err := s.EnsureRole(role)
	if err != nil {
		return err
	}
	act := NormalizeAction(action)
	if act == "" {
		return ErrActionRequired
	}
	if _, err := s.enforcer.AddPolicy(normalizedRole, NormalizeObject(object), act); err != nil {
		return fmt.Errorf("grant policy failed: %w", err)
	}
	return nil
}

// RevokeRolePolicy 撤销角色策略，策略不存在时视为成功
func (s *Service) RevokeRolePolicy(role, object, action string) error {
	normalizedRole, err := NormalizeRole(role)
	if err != nil {
		return err
	}
	act := NormalizeAction(action)
	if act == "" {
		return ErrActionRequired
	}
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.enforcer.RemovePolicy(normalizedRole, NormalizeObject(object), act); err != nil {
		return fmt.Errorf("revoke policy failed: %w", err)
	}
	return nil
}

// GetRolePolicies 查询角色直接持有的策略（不含继承）
func (s *Service) GetRolePolicies(role string) ([]Policy, error) {
	normalizedRole, err := NormalizeRole(role)
	if err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredPolicy(0, normalizedRole)
	if err != nil {
		return nil, fmt.Errorf("get role policies failed: %w", err)
	}
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{
			Subject: strings.TrimSpace(rule[0]),
			Object:  NormalizeObject(rule[1]),
			Action:  NormalizeAction(rule[2]),
		})
	}
	return policies, nil
}

// SubjectForCredential 凭证主体标识
func SubjectForCredential(credentialID string) string {
	return subjectPrefix + strings.TrimSpace(credentialID)
}

// NormalizeRole 统一角色名称：空格转下划线并补 role: 前缀
func NormalizeRole(role string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(role), " ", "_")
	normalized = strings.TrimPrefix(normalized, rolePrefix)
	if normalized == "" {
		return "", ErrRoleRequired
	}
	return rolePrefix + normalized, nil
}

// NormalizeObject 去掉 /api/v1 前缀，得到与策略一致的路由模板
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	switch {
	case normalized == apiV1Prefix:
		return "/"
	case strings.HasPrefix(normalized, apiV1Prefix+"/"):
		return strings.TrimPrefix(normalized, apiV1Prefix)
	default:
		return normalized
	}
}

// NormalizeAction 统一授权动作
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
