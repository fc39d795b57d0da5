package repository

import (
	"testing"
	"time"

	"github.com/jewelhub/internal/models"
)

func TestVisibilityRepositoryUpsertKeepsSingleRecord(t *testing.T) {
	repo := NewVisibilityRepository(openRepositoryTestDB(t))

	missing, err := repo.Get("1", "shop-a")
	if err != nil || missing != nil {
		t.Fatalf("expected no override, got %+v err=%v", missing, err)
	}

	if err := repo.Upsert(&models.VisibilityOverride{ProductID: "1", JewelerShopID: "shop-a", IsVisible: false, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.VisibilityOverride{ProductID: "1", JewelerShopID: "shop-a", IsVisible: true, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	overrides, err := repo.ListByShop("shop-a")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(overrides))
	}
	if !overrides[0].IsVisible {
		t.Fatalf("expected override flipped back to visible")
	}

	other, err := repo.ListByShop("shop-b")
	if err != nil || len(other) != 0 {
		t.Fatalf("other shop must stay untouched: %+v err=%v", other, err)
	}
}
