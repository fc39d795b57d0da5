package service

import (
	"context"
	"strings"
	"time"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductDisplay 目录条目的统一展示投影
type ProductDisplay struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       *models.Money      `json:"price,omitempty"`
	Category    string             `json:"category"`
	ImageURL    string             `json:"image_url"`
	ImageURLs   models.StringArray `json:"image_urls"`
	InStock     bool               `json:"in_stock"`
	MinOrder    int                `json:"min_order"`
	CreatedAt   models.Date        `json:"created_at"`
	UpdatedAt   models.Date        `json:"updated_at"`
}

// ResolvedProduct 店铺目录中的一个条目，Origin 标识平台或店铺来源
type ResolvedProduct struct {
	Origin        string `json:"origin"`
	JewelerShopID string `json:"jeweler_shop_id,omitempty"`
	ProductDisplay
}

func (p ResolvedProduct) display() ProductDisplay {
	return p.ProductDisplay
}

// ManagedProduct 店铺后台管理视图条目（原始价格 + 生效可见性）
type ManagedProduct struct {
	ResolvedProduct
	IsVisible bool `json:"is_visible"`
}

// PublicSettings 面向访客的店铺品牌设置（不含加价比例）
type PublicSettings struct {
	Logo               string `json:"logo"`
	StoreName          string `json:"store_name"`
	Tagline            string `json:"tagline"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	HeroTitle          string `json:"hero_title"`
	HeroSubtitle       string `json:"hero_subtitle"`
	HeroBannerURL      string `json:"hero_banner_url"`
	PrimaryColor       string `json:"primary_color"`
	AccentColor        string `json:"accent_color"`
	ShowPriceInCatalog bool   `json:"show_price_in_catalog"`
}

// StorefrontView 店铺前台资料
type StorefrontView struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	City     string         `json:"city"`
	State    string         `json:"state"`
	IsActive bool           `json:"is_active"`
	Settings PublicSettings `json:"settings"`
}

// StorefrontService 店铺目录解析服务（只读）
type StorefrontService struct {
	shopRepo          repository.ShopRepository
	productRepo       repository.ProductRepository
	tenantProductRepo repository.TenantProductRepository
	visibilityRepo    repository.VisibilityRepository
	cacheTTL          time.Duration
}

// NewStorefrontService 创建目录解析服务
func NewStorefrontService(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	tenantProductRepo repository.TenantProductRepository,
	visibilityRepo repository.VisibilityRepository,
	cacheTTL time.Duration,
) *StorefrontService {
	return &StorefrontService{
		shopRepo:          shopRepo,
		productRepo:       productRepo,
		tenantProductRepo: tenantProductRepo,
		visibilityRepo:    visibilityRepo,
		cacheTTL:          cacheTTL,
	}
}

// ResolveCatalog 解析店铺前台目录：可见平台商品在前，店铺自有商品在后
func (s *StorefrontService) ResolveCatalog(shopID string) ([]ResolvedProduct, error) {
	shopID = strings.TrimSpace(shopID)
	ctx := context.Background()
	// 版本必须先于任何数据读取，写入缓存时沿用该版本
	cacheable := s.cacheTTL > 0
	version, err := cache.CurrentCatalogVersion(ctx, shopID)
	if err != nil {
		logger.Warnw("catalog_cache_version_failed", "shop_id", shopID, "error", err)
		cacheable = false
	}

	shop, err := s.shopRepo.GetByID(shopID, true)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}

	if cacheable {
		var cached []ResolvedProduct
		if hit, err := cache.GetResolvedCatalog(ctx, shopID, version, &cached); err != nil {
			logger.Warnw("catalog_cache_read_failed", "shop_id", shopID, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	overrides, err := s.visibilityRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	own, err := s.tenantProductRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}

	pricing := newPricingRule(shop.Settings)
	visibility := buildVisibilityIndex(overrides)
	result := make([]ResolvedProduct, 0, len(products)+len(own))
	for i := range products {
		if !visibility.isVisible(products[i].ID) {
			continue
		}
		result = append(result, ResolvedProduct{
			Origin:         constants.OriginPlatform,
			ProductDisplay: platformDisplay(&products[i], pricing.apply(products[i].Price)),
		})
	}
	for i := range own {
		result = append(result, ResolvedProduct{
			Origin:         constants.OriginTenant,
			JewelerShopID:  own[i].JewelerShopID,
			ProductDisplay: tenantDisplay(&own[i], pricing.apply(own[i].Price)),
		})
	}

	if cacheable {
		if err := cache.SetResolvedCatalog(ctx, shopID, version, result, s.cacheTTL); err != nil {
			logger.Warnw("catalog_cache_write_failed", "shop_id", shopID, "error", err)
		}
	}
	return result, nil
}

// ManagedCatalog 店铺后台视图：全部平台商品（附生效可见性）+ 店铺自有商品，价格为原始价格
func (s *StorefrontService) ManagedCatalog(shopID string) ([]ManagedProduct, error) {
	shopID = strings.TrimSpace(shopID)
	shop, err := s.shopRepo.GetByID(shopID, false)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}
	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	overrides, err := s.visibilityRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}
	own, err := s.tenantProductRepo.ListByShop(shopID)
	if err != nil {
		return nil, err
	}

	visibility := buildVisibilityIndex(overrides)
	result := make([]ManagedProduct, 0, len(products)+len(own))
	for i := range products {
		price := products[i].Price
		result = append(result, ManagedProduct{
			ResolvedProduct: ResolvedProduct{
				Origin:         constants.OriginPlatform,
				ProductDisplay: platformDisplay(&products[i], &price),
			},
			IsVisible: visibility.isVisible(products[i].ID),
		})
	}
	for i := range own {
		price := own[i].Price
		result = append(result, ManagedProduct{
			ResolvedProduct: ResolvedProduct{
				Origin:         constants.OriginTenant,
				JewelerShopID:  own[i].JewelerShopID,
				ProductDisplay: tenantDisplay(&own[i], &price),
			},
			IsVisible: true,
		})
	}
	return result, nil
}

// Storefront 返回店铺前台资料与品牌设置
func (s *StorefrontService) Storefront(shopID string) (*StorefrontView, error) {
	shop, err := s.shopRepo.GetByID(strings.TrimSpace(shopID), true)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}
	stored := models.TenantSettings{ShopID: shop.ID}
	if shop.Settings != nil {
		stored = *shop.Settings
	}
	settings := fillSettingsDefaults(shop, stored)
	return &StorefrontView{
		ID:       shop.ID,
		Name:     shop.Name,
		City:     shop.City,
		State:    shop.State,
		IsActive: shop.IsActive,
		Settings: PublicSettings{
			Logo:               settings.Logo,
			StoreName:          settings.StoreName,
			Tagline:            settings.Tagline,
			Email:              settings.Email,
			Phone:              settings.Phone,
			Address:            settings.Address,
			HeroTitle:          settings.HeroTitle,
			HeroSubtitle:       settings.HeroSubtitle,
			HeroBannerURL:      settings.HeroBannerURL,
			PrimaryColor:       settings.PrimaryColor,
			AccentColor:        settings.AccentColor,
			ShowPriceInCatalog: settings.ShowPriceInCatalog,
		},
	}, nil
}

// PublicProducts 平台目录公开视图（不展示价格）
func (s *StorefrontService) PublicProducts() ([]ResolvedProduct, error) {
	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]ResolvedProduct, 0, len(products))
	for i := range products {
		result = append(result, ResolvedProduct{
			Origin:         constants.OriginPlatform,
			ProductDisplay: platformDisplay(&products[i], nil),
		})
	}
	return result, nil
}

// pricingRule 店铺定价规则；未设置或不展示价格时隐藏价格
type pricingRule struct {
	show   bool
	markup decimal.Decimal
}

func newPricingRule(settings *models.TenantSettings) pricingRule {
	if settings == nil {
		return pricingRule{}
	}
	return pricingRule{show: settings.ShowPriceInCatalog, markup: settings.PriceMarkupPercent}
}

func (r pricingRule) apply(base models.Money) *models.Money {
	if !r.show {
		return nil
	}
	price := base.ScalePercent(r.markup)
	return &price
}

func platformDisplay(p *models.Product, price *models.Money) ProductDisplay {
	return ProductDisplay{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		ImageURLs:   p.ImageURLs,
		InStock:     p.InStock,
		MinOrder:    p.MinOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func tenantDisplay(p *models.TenantProduct, price *models.Money) ProductDisplay {
	return ProductDisplay{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		ImageURLs:   p.ImageURLs,
		InStock:     p.InStock,
		MinOrder:    p.MinOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
