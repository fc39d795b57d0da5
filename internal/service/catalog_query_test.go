package service

import (
	"testing"

	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/models"
)

func queryFixture() []ResolvedProduct {
	price := func(v int64) *models.Money {
		m := models.NewMoneyFromInt(v)
		return &m
	}
	return []ResolvedProduct{
		{Origin: constants.OriginPlatform, ProductDisplay: ProductDisplay{ID: "a", Name: "Halo Ring", Description: "platinum", Category: "Rings", Price: price(300), CreatedAt: models.MustDate("2024-01-02")}},
		{Origin: constants.OriginPlatform, ProductDisplay: ProductDisplay{ID: "b", Name: "Pearl Necklace", Description: "classic strand", Category: "Necklaces", Price: price(100), CreatedAt: models.MustDate("2024-01-05")}},
		{Origin: constants.OriginTenant, ProductDisplay: ProductDisplay{ID: "c", Name: "band", Description: "simple ring", Category: "Rings", Price: price(200), CreatedAt: models.MustDate("2024-01-01")}},
	}
}

func ids(items []ResolvedProduct) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestApplyCatalogQuery(t *testing.T) {
	cases := []struct {
		name  string
		query CatalogQuery
		want  []string
	}{
		{name: "no filter", query: CatalogQuery{}, want: []string{"a", "b", "c"}},
		{name: "category", query: CatalogQuery{Category: "Rings"}, want: []string{"a", "c"}},
		{name: "category all", query: CatalogQuery{Category: "All"}, want: []string{"a", "b", "c"}},
		{name: "search description", query: CatalogQuery{Search: "RING"}, want: []string{"a", "c"}},
		{name: "price low", query: CatalogQuery{Sort: constants.SortPriceLow}, want: []string{"b", "c", "a"}},
		{name: "price high", query: CatalogQuery{Sort: constants.SortPriceHigh}, want: []string{"a", "c", "b"}},
		{name: "newest", query: CatalogQuery{Sort: constants.SortNewest}, want: []string{"b", "a", "c"}},
		{name: "oldest", query: CatalogQuery{Sort: constants.SortOldest}, want: []string{"c", "a", "b"}},
		{name: "name asc", query: CatalogQuery{Sort: constants.SortNameAsc}, want: []string{"c", "a", "b"}},
		{name: "name desc", query: CatalogQuery{Sort: constants.SortNameDesc}, want: []string{"b", "a", "c"}},
		{name: "unknown sort keeps order", query: CatalogQuery{Sort: "random"}, want: []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(ApplyCatalogQuery(queryFixture(), tc.query))
			if len(got) != len(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("want %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestApplyCatalogQueryPriceSortWithoutPrices(t *testing.T) {
	items := queryFixture()
	for i := range items {
		items[i].Price = nil
	}
	got := ids(ApplyCatalogQuery(items, CatalogQuery{Sort: constants.SortPriceHigh}))
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("hidden prices must keep original order, got %v", got)
	}
}

func TestCatalogCategories(t *testing.T) {
	got := CatalogCategories(queryFixture())
	if len(got) != 2 || got[0] != "Necklaces" || got[1] != "Rings" {
		t.Fatalf("unexpected categories: %v", got)
	}
}
