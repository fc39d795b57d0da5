package authz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceRoleWithGrantedPolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("merchandiser", "/admin/products/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	allow, err := svc.EnforceRole("merchandiser", "/api/v1/admin/products/42", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceRole("merchandiser", "/api/v1/admin/products/42", "POST")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("merchandiser", "/admin/shops", "GET"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	policies, err := svc.GetRolePolicies("merchandiser")
	if err != nil {
		t.Fatalf("get policies failed: %v", err)
	}
	if len(policies) != 1 || policies[0].Object != "/admin/shops" || policies[0].Action != "GET" {
		t.Fatalf("unexpected policies: %+v", policies)
	}

	if err := svc.RevokeRolePolicy("merchandiser", "/admin/shops", "GET"); err != nil {
		t.Fatalf("revoke policy failed: %v", err)
	}
	allow, err := svc.EnforceRole("merchandiser", "/admin/shops", "GET")
	if err != nil {
		t.Fatalf("enforce after revoke failed: %v", err)
	}
	if allow {
		t.Fatalf("expected revoked permission denied")
	}
}

func TestEnforceCredentialFallsBackToRole(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	allow, err := svc.EnforceCredential("jeweler-1", "jeweler_admin", "/api/v1/jeweler/:shop_id/products", "POST")
	if err != nil {
		t.Fatalf("enforce jeweler failed: %v", err)
	}
	if !allow {
		t.Fatalf("jeweler role must reach jeweler routes")
	}

	allow, err = svc.EnforceCredential("jeweler-1", "jeweler_admin", "/api/v1/admin/products", "GET")
	if err != nil {
		t.Fatalf("enforce jeweler on admin failed: %v", err)
	}
	if allow {
		t.Fatalf("jeweler role must not reach admin routes")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/shops/:id", want: "/admin/shops/:id"},
		{in: "/admin/shops/:id", want: "/admin/shops/:id"},
		{in: "admin/shops", want: "/admin/shops"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	wantRoles := map[string]bool{
		"role:catalog_auditor": true,
		"role:super_admin":     true,
		"role:jeweler_admin":   true,
	}
	for _, role := range roles {
		delete(wantRoles, role)
	}
	if len(wantRoles) != 0 {
		t.Fatalf("builtin roles missing: %v", wantRoles)
	}

	allow, err := svc.EnforceRole("catalog_auditor", "/admin/shops", "GET")
	if err != nil {
		t.Fatalf("enforce auditor read failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected auditor read permission")
	}

	allow, err = svc.EnforceRole("catalog_auditor", "/admin/shops", "POST")
	if err != nil {
		t.Fatalf("enforce auditor write failed: %v", err)
	}
	if allow {
		t.Fatalf("expected auditor write denied")
	}

	allow, err = svc.EnforceRole("super_admin", "/admin/products/bulk-adjust", "POST")
	if err != nil {
		t.Fatalf("enforce super admin failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected super admin write permission")
	}

	if err := svc.DeleteRole("super_admin"); !errors.Is(err, ErrRoleImmutable) {
		t.Fatalf("builtin role delete must fail, got %v", err)
	}
}

func TestPolicyInputValidation(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if _, err := svc.EnsureRole("  "); !errors.Is(err, ErrRoleRequired) {
		t.Fatalf("blank role want ErrRoleRequired, got %v", err)
	}
	if _, err := svc.EnsureRole("__anchor__"); !errors.Is(err, ErrRoleRequired) {
		t.Fatalf("anchor role want ErrRoleRequired, got %v", err)
	}
	if err := svc.GrantRolePolicy("merchandiser", "/admin/products", " "); !errors.Is(err, ErrActionRequired) {
		t.Fatalf("blank action want ErrActionRequired, got %v", err)
	}

	var nilSvc *Service
	if _, err := nilSvc.Enforce("role:super_admin", "/admin/products", "GET"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("nil service want ErrUnavailable, got %v", err)
	}
}

func TestDeleteCustomRoleRemovesPolicies(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("Price Editor", "/admin/products/bulk-adjust", "POST"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:Price_Editor" {
		t.Fatalf("unexpected roles: %v", roles)
	}

	if err := svc.DeleteRole("role:Price_Editor"); err != nil {
		t.Fatalf("delete role failed: %v", err)
	}
	allow, err := svc.EnforceRole("Price_Editor", "/admin/products/bulk-adjust", "POST")
	if err != nil {
		t.Fatalf("enforce after delete failed: %v", err)
	}
	if allow {
		t.Fatalf("deleted role must not keep its policies")
	}
	roles, err = svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected no roles after delete, got %v", roles)
	}
}
