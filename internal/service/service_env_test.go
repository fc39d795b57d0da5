package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/queue"
	"github.com/jewelhub/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	repos      LoaderRepositories
	audit      *repository.GormAuditLogRepository
	locker     *KeyedLocker
	catalog    *CatalogService
	tenants    *TenantService
	tenantCat  *TenantCatalogService
	visibility *VisibilityService
	storefront *StorefrontService
	dashboard  *DashboardService
	auth       *AuthService
	loader     *LoaderService
	auditSvc   *AuditService
}

func newServiceTestEnv(t *testing.T) *serviceTestEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := config.Default()
	repos := LoaderRepositories{
		Products:       repository.NewProductRepository(db),
		Shops:          repository.NewShopRepository(db),
		Settings:       repository.NewSettingsRepository(db),
		TenantProducts: repository.NewTenantProductRepository(db),
		Visibility:     repository.NewVisibilityRepository(db),
		Credentials:    repository.NewCredentialRepository(db),
		Dashboard:      repository.NewDashboardRepository(db),
	}
	locker := NewKeyedLocker()
	env := &serviceTestEnv{
		db:     db,
		cfg:    cfg,
		repos:  repos,
		audit:  repository.NewAuditLogRepository(db),
		locker: locker,
	}
	env.catalog = NewCatalogService(repos.Products, locker, cfg.Catalog.DefaultImageURL)
	env.tenants = NewTenantService(repos.Shops, repos.Settings, repos.TenantProducts, repos.Visibility, repos.Credentials, repos.Dashboard, locker)
	env.tenantCat = NewTenantCatalogService(repos.Shops, repos.TenantProducts, locker, cfg.Catalog.DefaultImageURL)
	env.visibility = NewVisibilityService(repos.Shops, repos.Products, repos.Visibility, locker)
	env.storefront = NewStorefrontService(repos.Shops, repos.Products, repos.TenantProducts, repos.Visibility, 0)
	env.dashboard = NewDashboardService(repos.Products, repos.TenantProducts, repos.Shops, repos.Settings, repos.Visibility, repos.Dashboard)
	env.auth = NewAuthService(cfg, repos.Credentials, repos.Shops)
	env.loader = NewLoaderService(repos, env.auth, 0)
	queueClient, _ := queue.NewClient(&cfg.Queue)
	env.auditSvc = NewAuditService(env.audit, queueClient)
	return env
}

// loadSeed 写入默认种子数据
func (e *serviceTestEnv) loadSeed(t *testing.T) {
	t.Helper()
	if err := e.loader.Load(context.Background()); err != nil {
		t.Fatalf("seed load failed: %v", err)
	}
}
