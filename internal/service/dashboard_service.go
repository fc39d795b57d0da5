package service

import (
	"strings"

	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/shopspring/decimal"
)

const recentProductLimit = 5

// DashboardService 平台与店铺看板服务
type DashboardService struct {
	productRepo       repository.ProductRepository
	tenantProductRepo repository.TenantProductRepository
	shopRepo          repository.ShopRepository
	settingsRepo      repository.SettingsRepository
	visibilityRepo    repository.VisibilityRepository
	dashboardRepo     repository.DashboardRepository
}

// NewDashboardService 创建看板服务
func NewDashboardService(
	productRepo repository.ProductRepository,
	tenantProductRepo repository.TenantProductRepository,
	shopRepo repository.ShopRepository,
	settingsRepo repository.SettingsRepository,
	visibilityRepo repository.VisibilityRepository,
	dashboardRepo repository.DashboardRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:       productRepo,
		tenantProductRepo: tenantProductRepo,
		shopRepo:          shopRepo,
		settingsRepo:      settingsRepo,
		visibilityRepo:    visibilityRepo,
		dashboardRepo:     dashboardRepo,
	}
}

// DashboardOverview 平台看板
type DashboardOverview struct {
	TotalProducts     int64            `json:"total_products"`
	PlatformProducts  int64            `json:"platform_products"`
	TenantProducts    int64            `json:"tenant_products"`
	TotalShops        int64            `json:"total_shops"`
	ActiveShops       int64            `json:"active_shops"`
	TotalOrders       int64            `json:"total_orders"`
	Revenue           models.Money     `json:"revenue"`
	AverageOrderValue models.Money     `json:"average_order_value"`
	RecentProducts    []models.Product `json:"recent_products"`
}

// TenantOverview 店铺看板
type TenantOverview struct {
	ShopID                string `json:"shop_id"`
	OwnProducts           int64  `json:"own_products"`
	VisiblePlatform       int64  `json:"visible_platform_products"`
	HiddenPlatform        int64  `json:"hidden_platform_products"`
	VisibleTotal          int64  `json:"visible_total"`
	HasStoreSettings      bool   `json:"has_store_settings"`
	ShowPriceInCatalog    bool   `json:"show_price_in_catalog"`
	PriceMarkupPercentage string `json:"price_markup_percent"`
}

// Overview 平台看板：店铺计数取显式计数器，其余每次读取时重新计算
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	counter, err := s.dashboardRepo.GetCounter()
	if err != nil {
		return nil, err
	}
	if counter == nil {
		return nil, ErrNotInitialized
	}
	platformProducts, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	tenantProducts, err := s.tenantProductRepo.Count()
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.shopRepo.SumTotalOrders()
	if err != nil {
		return nil, err
	}
	recent, err := s.productRepo.ListRecent(recentProductLimit)
	if err != nil {
		return nil, err
	}

	average := models.NewMoneyFromInt(0)
	if totalOrders > 0 {
		average = models.NewMoneyFromDecimal(counter.Revenue.Div(decimal.NewFromInt(totalOrders)))
	}
	return &DashboardOverview{
		TotalProducts:     platformProducts + tenantProducts,
		PlatformProducts:  platformProducts,
		TenantProducts:    tenantProducts,
		TotalShops:        counter.TotalShops,
		ActiveShops:       counter.ActiveShops,
		TotalOrders:       totalOrders,
		Revenue:           counter.Revenue,
		AverageOrderValue: average,
		RecentProducts:    recent,
	}, nil
}

// TenantOverview 店铺看板
func (s *DashboardService) TenantOverview(shopID string) (*TenantOverview, error) {
	shopID = strings.TrimSpace(shopID)
	shop, err := s.shopRepo.GetByID(shopID, false)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}
	own, err := s.tenantProductRepo.CountByShop(shopID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	overrides, err := s.visibilityRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.GetByShop(shopID)
	if err != nil {
		return nil, err
	}

	visibility := buildVisibilityIndex(overrides)
	overview := &TenantOverview{
		ShopID:                shopID,
		OwnProducts:           own,
		HasStoreSettings:      settings != nil,
		PriceMarkupPercentage: "0",
	}
	for _, product := range products {
		if visibility.isVisible(product.ID) {
			overview.VisiblePlatform++
		} else {
			overview.HiddenPlatform++
		}
	}
	overview.VisibleTotal = overview.VisiblePlatform + own
	if settings != nil {
		overview.ShowPriceInCatalog = settings.ShowPriceInCatalog
		overview.PriceMarkupPercentage = settings.PriceMarkupPercent.String()
	}
	return overview, nil
}
