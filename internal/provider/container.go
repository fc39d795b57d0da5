package provider

import (
	"time"

	"github.com/jewelhub/internal/authz"
	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/queue"
	"github.com/jewelhub/internal/repository"
	"github.com/jewelhub/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo       repository.ProductRepository
	ShopRepo          repository.ShopRepository
	SettingsRepo      repository.SettingsRepository
	TenantProductRepo repository.TenantProductRepository
	VisibilityRepo    repository.VisibilityRepository
	CredentialRepo    repository.CredentialRepository
	DashboardRepo     repository.DashboardRepository
	AuditLogRepo      repository.AuditLogRepository

	// Services
	Locker               *service.KeyedLocker
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	CaptchaService       *service.CaptchaService
	CatalogService       *service.CatalogService
	TenantService        *service.TenantService
	TenantCatalogService *service.TenantCatalogService
	VisibilityService    *service.VisibilityService
	StorefrontService    *service.StorefrontService
	DashboardService     *service.DashboardService
	AuditService         *service.AuditService
	LoaderService        *service.LoaderService
}

// NewContainer 初始化容器（使用全局数据库连接）
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c, err := NewContainerWithDB(cfg, models.DB)
	if err != nil {
		logger.Errorw("provider_init_failed", "error", err)
		panic(err)
	}
	return c
}

// NewContainerWithDB 基于指定数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	if err := c.initServices(db); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.ProductRepo = repository.NewProductRepository(db)
	c.ShopRepo = repository.NewShopRepository(db)
	c.SettingsRepo = repository.NewSettingsRepository(db)
	c.TenantProductRepo = repository.NewTenantProductRepository(db)
	c.VisibilityRepo = repository.NewVisibilityRepository(db)
	c.CredentialRepo = repository.NewCredentialRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
	c.AuditLogRepo = repository.NewAuditLogRepository(db)
}

func (c *Container) initServices(db *gorm.DB) error {
	authzService, err := authz.NewService(db)
	if err != nil {
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		return err
	}

	catalogCfg := c.Config.Catalog
	c.Locker = service.NewKeyedLocker()
	c.AuthService = service.NewAuthService(c.Config, c.CredentialRepo, c.ShopRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.Locker, catalogCfg.DefaultImageURL)
	c.TenantService = service.NewTenantService(c.ShopRepo, c.SettingsRepo, c.TenantProductRepo, c.VisibilityRepo, c.CredentialRepo, c.DashboardRepo, c.Locker)
	c.TenantCatalogService = service.NewTenantCatalogService(c.ShopRepo, c.TenantProductRepo, c.Locker, catalogCfg.DefaultImageURL)
	c.VisibilityService = service.NewVisibilityService(c.ShopRepo, c.ProductRepo, c.VisibilityRepo, c.Locker)
	c.StorefrontService = service.NewStorefrontService(c.ShopRepo, c.ProductRepo, c.TenantProductRepo, c.VisibilityRepo,
		time.Duration(catalogCfg.CacheTTLSeconds)*time.Second)
	c.DashboardService = service.NewDashboardService(c.ProductRepo, c.TenantProductRepo, c.ShopRepo, c.SettingsRepo, c.VisibilityRepo, c.DashboardRepo)
	c.AuditService = service.NewAuditService(c.AuditLogRepo, c.QueueClient)
	c.LoaderService = service.NewLoaderService(service.LoaderRepositories{
		Products:       c.ProductRepo,
		Shops:          c.ShopRepo,
		Settings:       c.SettingsRepo,
		TenantProducts: c.TenantProductRepo,
		Visibility:     c.VisibilityRepo,
		Credentials:    c.CredentialRepo,
		Dashboard:      c.DashboardRepo,
	}, c.AuthService, time.Duration(catalogCfg.SeedDelayMS)*time.Millisecond)
	return nil
}
