package service

import (
	"errors"
	"testing"
)

func TestDashboardOverviewRequiresInitialization(t *testing.T) {
	env := newServiceTestEnv(t)
	if _, err := env.dashboard.Overview(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected not initialized, got %v", err)
	}
}

func TestDashboardOverviewSeeded(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	overview, err := env.dashboard.Overview()
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalProducts != 8 || overview.PlatformProducts != 6 || overview.TenantProducts != 2 {
		t.Fatalf("unexpected product counts: %+v", overview)
	}
	if overview.TotalShops != 48 || overview.ActiveShops != 42 {
		t.Fatalf("unexpected shop counters: total=%d active=%d", overview.TotalShops, overview.ActiveShops)
	}
	if overview.TotalOrders != 380 {
		t.Fatalf("unexpected total orders: %d", overview.TotalOrders)
	}
	if overview.Revenue.String() != "2840000.00" || overview.AverageOrderValue.String() != "7473.68" {
		t.Fatalf("unexpected revenue figures: %s / %s", overview.Revenue.String(), overview.AverageOrderValue.String())
	}
	want := []string{"1", "2", "3", "4", "5"}
	if len(overview.RecentProducts) != len(want) {
		t.Fatalf("expected %d recent products, got %d", len(want), len(overview.RecentProducts))
	}
	for i, id := range want {
		if overview.RecentProducts[i].ID != id {
			t.Fatalf("recent[%d] want %s, got %s", i, id, overview.RecentProducts[i].ID)
		}
	}
}

func TestDashboardTenantOverview(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	overview, err := env.dashboard.TenantOverview("1")
	if err != nil {
		t.Fatalf("tenant overview failed: %v", err)
	}
	if overview.OwnProducts != 2 || overview.VisiblePlatform != 5 || overview.HiddenPlatform != 1 || overview.VisibleTotal != 7 {
		t.Fatalf("unexpected tenant overview: %+v", overview)
	}
	if !overview.HasStoreSettings || !overview.ShowPriceInCatalog || overview.PriceMarkupPercentage != "15" {
		t.Fatalf("unexpected settings summary: %+v", overview)
	}

	other, err := env.dashboard.TenantOverview("3")
	if err != nil {
		t.Fatalf("tenant overview failed: %v", err)
	}
	if other.OwnProducts != 0 || other.VisiblePlatform != 6 || other.HasStoreSettings {
		t.Fatalf("unexpected overview for shop 3: %+v", other)
	}
	if _, err := env.dashboard.TenantOverview("missing"); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
