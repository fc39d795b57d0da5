package service

import (
	"errors"
	"testing"

	"github.com/jewelhub/internal/models"

	"github.com/shopspring/decimal"
)

func readCounter(t *testing.T, env *serviceTestEnv) *models.DashboardCounter {
	t.Helper()
	counter, err := env.repos.Dashboard.GetCounter()
	if err != nil || counter == nil {
		t.Fatalf("get counter failed: %v", err)
	}
	return counter
}

func TestTenantCountersFollowActiveTransitions(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	active := true
	inactive := false
	if _, err := env.tenants.Create(ShopInput{ID: "6", Name: "New Shop", OwnerName: "Owner", Email: "new@example.com", IsActive: &active}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c := readCounter(t, env); c.TotalShops != 49 || c.ActiveShops != 43 {
		t.Fatalf("after create: total=%d active=%d", c.TotalShops, c.ActiveShops)
	}

	if _, err := env.tenants.Update("6", ShopInput{Name: "New Shop", OwnerName: "Owner", Email: "new@example.com", IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if c := readCounter(t, env); c.TotalShops != 49 || c.ActiveShops != 42 {
		t.Fatalf("after deactivate: total=%d active=%d", c.TotalShops, c.ActiveShops)
	}

	if _, err := env.tenants.Update("6", ShopInput{Name: "Renamed", OwnerName: "Owner", Email: "new@example.com", IsActive: &inactive}); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if c := readCounter(t, env); c.ActiveShops != 42 {
		t.Fatalf("update without flip must not move active count: %d", c.ActiveShops)
	}

	if err := env.tenants.Delete("6"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if c := readCounter(t, env); c.TotalShops != 48 || c.ActiveShops != 42 {
		t.Fatalf("after delete: total=%d active=%d", c.TotalShops, c.ActiveShops)
	}
}

func TestTenantDeleteRemovesOwnedRecords(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	if err := env.tenants.Delete("1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if c := readCounter(t, env); c.TotalShops != 47 || c.ActiveShops != 41 {
		t.Fatalf("unexpected counters: total=%d active=%d", c.TotalShops, c.ActiveShops)
	}
	own, err := env.repos.TenantProducts.CountByShop("1")
	if err != nil || own != 0 {
		t.Fatalf("tenant products not removed: %d err=%v", own, err)
	}
	settings, err := env.repos.Settings.GetByShop("1")
	if err != nil || settings != nil {
		t.Fatalf("settings not removed: %+v err=%v", settings, err)
	}
	credential, err := env.repos.Credentials.GetByUsername("diamond_palace")
	if err != nil || credential != nil {
		t.Fatalf("bound credential not removed: %+v err=%v", credential, err)
	}
	if _, err := env.storefront.ResolveCatalog("1"); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("deleted tenant must resolve to not found, got %v", err)
	}
	if err := env.tenants.Delete("1"); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestRecreatedShopStartsWithDefaultVisibility(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	if visible, err := env.visibility.EffectiveVisibility("4", "1"); err != nil || visible {
		t.Fatalf("seeded override should hide product 4: visible=%v err=%v", visible, err)
	}
	if err := env.tenants.Delete("1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	rows, err := env.repos.Visibility.ListByShop("1")
	if err != nil || len(rows) != 0 {
		t.Fatalf("visibility rows should be removed with the shop: %+v err=%v", rows, err)
	}

	if _, err := env.tenants.Create(ShopInput{ID: "1", Name: "Diamond Palace Reborn", OwnerName: "Owner", Email: "reborn@example.com"}); err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	visible, err := env.visibility.EffectiveVisibility("4", "1")
	if err != nil || !visible {
		t.Fatalf("recreated shop must not inherit old overrides: visible=%v err=%v", visible, err)
	}
}

func TestTenantValidation(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	if _, err := env.tenants.Create(ShopInput{Name: "No Owner", Email: "x@example.com"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := env.tenants.Update("missing", ShopInput{Name: "A", OwnerName: "B", Email: "c@example.com"}); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateSettingsFillsFallbacks(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	view, err := env.tenants.GetSettingsView("2")
	if err != nil {
		t.Fatalf("settings view failed: %v", err)
	}
	if view.IsStored {
		t.Fatalf("shop 2 has no stored settings")
	}

	saved, err := env.tenants.UpdateSettings("2", SettingsInput{Tagline: "Royal craft"})
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	if saved.StoreName != "Crown Jewelers" || saved.Email != "sarah@crownjewelers.com" {
		t.Fatalf("profile fallbacks missing: %+v", saved)
	}
	if saved.PrimaryColor != "#1e3a5f" || saved.AccentColor != "#c9a961" {
		t.Fatalf("color fallbacks missing: %+v", saved)
	}
	if !saved.PriceMarkupPercent.IsZero() || saved.ShowPriceInCatalog {
		t.Fatalf("pricing defaults wrong: %+v", saved)
	}

	tooHigh := decimal.NewFromInt(150)
	if _, err := env.tenants.UpdateSettings("2", SettingsInput{PriceMarkupPercent: &tooHigh}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected markup validation error, got %v", err)
	}
	if _, err := env.tenants.UpdateSettings("missing", SettingsInput{}); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTenantProductsAreScopedToOwner(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	created, err := env.tenantCat.Create("2", ProductInput{Name: "Crown Band", Category: "Rings", Price: models.NewMoneyFromInt(800)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.JewelerShopID != "2" || !created.IsOwnProduct || len(created.ID) < 4 || created.ID[:3] != "jp-" {
		t.Fatalf("unexpected tenant product: %+v", created)
	}
	if _, err := env.tenantCat.Update("1", created.ID, ProductInput{Name: "Stolen", Category: "Rings"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("cross-tenant update must be not found, got %v", err)
	}
	if err := env.tenantCat.Delete("1", created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("cross-tenant delete must be not found, got %v", err)
	}
	if _, err := env.tenantCat.Create("missing", ProductInput{Name: "X", Category: "Rings"}); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("unknown tenant must be not found, got %v", err)
	}

	items, err := env.storefront.ResolveCatalog("1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	for _, item := range items {
		if item.ID == created.ID {
			t.Fatalf("shop 1 must not see shop 2 product")
		}
	}
	if err := env.tenantCat.Delete("2", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
