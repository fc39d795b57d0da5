package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
)

// enableCatalogCache 以内存 redis 打开解析目录缓存
func enableCatalogCache(t *testing.T, env *serviceTestEnv, tenantProducts repository.TenantProductRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := cache.InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port, Prefix: "jh-test"}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	if tenantProducts == nil {
		tenantProducts = env.repos.TenantProducts
	}
	env.storefront = NewStorefrontService(env.repos.Shops, env.repos.Products, tenantProducts, env.repos.Visibility, time.Minute)
}

func resolvedItem(t *testing.T, env *serviceTestEnv, shopID, productID string) *ResolvedProduct {
	t.Helper()
	items, err := env.storefront.ResolveCatalog(shopID)
	if err != nil {
		t.Fatalf("resolve catalog failed: %v", err)
	}
	for i := range items {
		if items[i].ID == productID {
			return &items[i]
		}
	}
	return nil
}

func resolvedPrice(t *testing.T, env *serviceTestEnv, shopID, productID string) string {
	t.Helper()
	item := resolvedItem(t, env, shopID, productID)
	if item == nil {
		t.Fatalf("product %s missing from shop %s catalog", productID, shopID)
	}
	if item.Price == nil {
		return ""
	}
	return item.Price.String()
}

func TestResolvedCatalogServedFromCache(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)
	enableCatalogCache(t, env, nil)

	if got := resolvedItem(t, env, "1", "1"); got == nil || got.Name != "Brilliant Cut Diamond Ring" {
		t.Fatalf("unexpected first resolve: %+v", got)
	}
	// 绕过服务层直接改库，缓存命中时仍返回旧投影
	if err := env.db.Model(&models.Product{}).Where("id = ?", "1").Update("name", "Renamed Behind Cache").Error; err != nil {
		t.Fatalf("direct update failed: %v", err)
	}
	if got := resolvedItem(t, env, "1", "1"); got == nil || got.Name != "Brilliant Cut Diamond Ring" {
		t.Fatalf("second resolve should hit cache, got %+v", got)
	}
}

func TestResolvedCatalogFreshAfterWrites(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)
	enableCatalogCache(t, env, nil)

	if got := resolvedPrice(t, env, "1", "1"); got != "14375.00" {
		t.Fatalf("seed price want 14375.00 got %s", got)
	}
	// shop 2 也被缓存，用于验证全局失效
	if got := resolvedPrice(t, env, "2", "1"); got != "" {
		t.Fatalf("shop 2 hides prices, got %s", got)
	}

	if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(10), constants.PriceDirectionIncrease); err != nil {
		t.Fatalf("bulk adjust failed: %v", err)
	}
	if got := resolvedPrice(t, env, "1", "1"); got != "15812.50" {
		t.Fatalf("after bulk adjust want 15812.50 got %s", got)
	}

	markup := decimal.NewFromInt(20)
	show := true
	if _, err := env.tenants.UpdateSettings("1", SettingsInput{PriceMarkupPercent: &markup, ShowPriceInCatalog: &show}); err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	if got := resolvedPrice(t, env, "1", "1"); got != "16500.00" {
		t.Fatalf("after settings want 16500.00 got %s", got)
	}

	if _, err := env.visibility.Toggle("1", "1"); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if got := resolvedItem(t, env, "1", "1"); got != nil {
		t.Fatalf("hidden product still served from cache: %+v", got)
	}

	own, err := env.tenantCat.Create("1", ProductInput{Name: "Cached Signet", Category: "Rings", Price: models.NewMoneyFromInt(1000)})
	if err != nil {
		t.Fatalf("create tenant product failed: %v", err)
	}
	if got := resolvedPrice(t, env, "1", own.ID); got != "1200.00" {
		t.Fatalf("new tenant product want 1200.00 got %s", got)
	}
	if _, err := env.tenantCat.Update("1", own.ID, ProductInput{Name: "Cached Signet", Category: "Rings", Price: models.NewMoneyFromInt(2000)}); err != nil {
		t.Fatalf("update tenant product failed: %v", err)
	}
	if got := resolvedPrice(t, env, "1", own.ID); got != "2400.00" {
		t.Fatalf("updated tenant product want 2400.00 got %s", got)
	}
}

// adjustingTenantProducts 在解析读取店铺商品时插入一次平台调价
type adjustingTenantProducts struct {
	repository.TenantProductRepository
	onList func()
}

func (r *adjustingTenantProducts) ListByShop(shopID string) ([]models.TenantProduct, error) {
	if r.onList != nil {
		hook := r.onList
		r.onList = nil
		hook()
	}
	return r.TenantProductRepository.ListByShop(shopID)
}

func TestResolveDuringBulkAdjustDoesNotPinStalePrices(t *testing.T) {
	env := newServiceTestEnv(t)
	env.loadSeed(t)
	repo := &adjustingTenantProducts{TenantProductRepository: env.repos.TenantProducts}
	enableCatalogCache(t, env, repo)

	repo.onList = func() {
		if _, err := env.catalog.BulkAdjustPrices(decimal.NewFromInt(10), constants.PriceDirectionIncrease); err != nil {
			t.Errorf("bulk adjust failed: %v", err)
		}
	}
	// 该次解析读到的是调价前的平台价格
	if got := resolvedPrice(t, env, "1", "1"); got != "14375.00" {
		t.Fatalf("in-flight resolve want 14375.00 got %s", got)
	}
	if got := resolvedPrice(t, env, "1", "1"); got != "15812.50" {
		t.Fatalf("resolve after bulk adjust want 15812.50 got %s", got)
	}
}
