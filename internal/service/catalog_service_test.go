package service

import (
	"errors"
	"testing"

	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/models"

	"github.com/shopspring/decimal"
)

func createTestProduct(t *testing.T, env *serviceTestEnv, id string, price int64) {
	t.Helper()
	if _, err := env.catalog.Create(ProductInput{ID: id, Name: "Product " + id, Category: "Rings", Price: models.NewMoneyFromInt(price)}); err != nil {
		t.Fatalf("create product %s failed: %v", id, err)
	}
}

func TestBulkAdjustPrices(t *testing.T) {
	cases := []struct {
		name      string
		direction string
		want      string
	}{
		{name: "increase", direction: constants.PriceDirectionIncrease, want: "1100.00"},
		{name: "decrease", direction: constants.PriceDirectionDecrease, want: "900.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newServiceTestEnv(t)
			createTestProduct(t, env, "p1", 1000)

			adjusted, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(10), tc.direction)
			if err != nil {
				t.Fatalf("bulk adjust failed: %v", err)
			}
			if adjusted != 1 {
				t.Fatalf("expected 1 adjusted product, got %d", adjusted)
			}
			product, err := env.catalog.Get("p1")
			if err != nil {
				t.Fatalf("get product failed: %v", err)
			}
			if product.Price.String() != tc.want {
				t.Fatalf("want %s, got %s", tc.want, product.Price.String())
			}
		})
	}
}

func TestBulkAdjustLeavesTenantProductsUntouched(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)

	if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(20), constants.PriceDirectionIncrease); err != nil {
		t.Fatalf("bulk adjust failed: %v", err)
	}
	own, err := env.tenantCat.Get("1", "jp-1")
	if err != nil {
		t.Fatalf("get tenant product failed: %v", err)
	}
	if own.Price.String() != "11200.00" {
		t.Fatalf("tenant product price changed: %s", own.Price.String())
	}
	product, err := env.catalog.Get("1")
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Price.String() != "15000.00" {
		t.Fatalf("platform product not adjusted: %s", product.Price.String())
	}
}

func TestBulkAdjustRejectsInvalidInput(t *testing.T) {
	env := newServiceTestEnv(t)
	createTestProduct(t, env, "p1", 1000)

	if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(10), "sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected invalid direction, got %v", err)
	}
	if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(-5), constants.PriceDirectionIncrease); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("expected invalid percentage, got %v", err)
	}
	if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(101), constants.PriceDirectionDecrease); !errors.Is(err, ErrInvalidPercentage) {
		t.Fatalf("expected invalid percentage for decrease > 100, got %v", err)
	}
	product, err := env.catalog.Get("p1")
	if err != nil || product.Price.String() != "1000.00" {
		t.Fatalf("rejected adjustment must not change prices: %v", err)
	}
}

func TestCatalogCreateNormalizesInput(t *testing.T) {
	env := newServiceTestEnv(t)

	product, err := env.catalog.Create(ProductInput{
		Name:      "  Halo Ring ",
		Category:  "Rings",
		Price:     models.NewMoneyFromInt(500),
		ImageURLs: []string{"", " https://img/1.jpg ", "https://img/2.jpg"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Fatalf("expected generated id")
	}
	if product.Name != "Halo Ring" || product.MinOrder != 1 || !product.InStock {
		t.Fatalf("unexpected defaults: %+v", product)
	}
	if product.ImageURL != "https://img/1.jpg" || len(product.ImageURLs) != 2 {
		t.Fatalf("image list not normalized: %s %v", product.ImageURL, product.ImageURLs)
	}

	fallback, err := env.catalog.Create(ProductInput{Name: "Plain", Category: "Rings"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if fallback.ImageURL != env.cfg.Catalog.DefaultImageURL {
		t.Fatalf("expected default image, got %s", fallback.ImageURL)
	}
}

func TestCatalogValidation(t *testing.T) {
	env := newServiceTestEnv(t)

	cases := []ProductInput{
		{Category: "Rings"},
		{Name: "Ring"},
		{Name: "Ring", Category: "Rings", Price: models.NewMoneyFromInt(-1)},
		{Name: "Ring", Category: "Rings", MinOrder: -2},
	}
	for _, input := range cases {
		if _, err := env.catalog.Create(input); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}

	createTestProduct(t, env, "dup", 10)
	if _, err := env.catalog.Create(ProductInput{ID: "dup", Name: "Again", Category: "Rings"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate id must be rejected, got %v", err)
	}
}

func TestCatalogUpdateAndDeleteMissing(t *testing.T) {
	env := newServiceTestEnv(t)
	createTestProduct(t, env, "p1", 100)

	updated, err := env.catalog.Update("p1", ProductInput{Name: "Renamed", Category: "Necklaces", Price: models.NewMoneyFromInt(150)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed" || updated.Price.String() != "150.00" || updated.Position != 1 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if _, err := env.catalog.Update("missing", ProductInput{Name: "X", Category: "Rings"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
	if err := env.catalog.Delete("missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
	if err := env.catalog.Delete("p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := env.catalog.Get("p1"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product must be gone, got %v", err)
	}
}
