package repository

import (
	"testing"

	"github.com/jewelhub/internal/models"
)

func seedTestProduct(t *testing.T, repo *GormProductRepository, id, name, category string, price int64, created string) {
	t.Helper()
	position, err := repo.NextPosition()
	if err != nil {
		t.Fatalf("next position failed: %v", err)
	}
	product := &models.Product{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       models.NewMoneyFromInt(price),
		Category:    category,
		InStock:     true,
		MinOrder:    1,
		Position:    position,
		CreatedAt:   models.MustDate(created),
		UpdatedAt:   models.MustDate(created),
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
}

func TestProductRepositoryKeepsAppendOrder(t *testing.T) {
	repo := NewProductRepository(openRepositoryTestDB(t))
	seedTestProduct(t, repo, "b", "Second Ring", "Rings", 200, "2024-01-02")
	seedTestProduct(t, repo, "a", "First Necklace", "Necklaces", 100, "2024-01-01")
	seedTestProduct(t, repo, "c", "Third Ring", "Rings", 300, "2024-01-03")

	products, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].ID != "b" || products[1].ID != "a" || products[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", products[0].ID, products[1].ID, products[2].ID)
	}
	if products[1].CreatedAt.String() != "2024-01-01" {
		t.Fatalf("date round trip mismatch: %s", products[1].CreatedAt.String())
	}
}

func TestProductRepositoryListFilters(t *testing.T) {
	repo := NewProductRepository(openRepositoryTestDB(t))
	seedTestProduct(t, repo, "1", "Diamond Ring", "Rings", 200, "2024-01-02")
	seedTestProduct(t, repo, "2", "Pearl Necklace", "Necklaces", 100, "2024-01-01")
	seedTestProduct(t, repo, "3", "Gold Ring", "Rings", 300, "2024-01-03")

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 1, Category: "Rings"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(products) != 1 || products[0].ID != "1" {
		t.Fatalf("unexpected page: total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Search: "PEARL"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || products[0].ID != "2" {
		t.Fatalf("unexpected search result: total=%d", total)
	}

	recent, err := repo.ListRecent(2)
	if err != nil {
		t.Fatalf("list recent failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "3" || recent[1].ID != "1" {
		t.Fatalf("unexpected recent products: %+v", recent)
	}
}

func TestProductRepositoryUpdateAndDelete(t *testing.T) {
	repo := NewProductRepository(openRepositoryTestDB(t))
	seedTestProduct(t, repo, "1", "Diamond Ring", "Rings", 200, "2024-01-02")

	if err := repo.UpdatePrice("1", models.NewMoneyFromInt(220), models.MustDate("2024-02-01")); err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	product, err := repo.GetByID("1")
	if err != nil || product == nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Price.String() != "220.00" || product.UpdatedAt.String() != "2024-02-01" {
		t.Fatalf("unexpected product after price update: %s %s", product.Price.String(), product.UpdatedAt.String())
	}

	affected, err := repo.Delete("1")
	if err != nil || affected != 1 {
		t.Fatalf("delete failed: affected=%d err=%v", affected, err)
	}
	affected, err = repo.Delete("1")
	if err != nil || affected != 0 {
		t.Fatalf("second delete should affect nothing: affected=%d err=%v", affected, err)
	}
	missing, err := repo.GetByID("1")
	if err != nil || missing != nil {
		t.Fatalf("expected nil product, got %+v err=%v", missing, err)
	}
}
