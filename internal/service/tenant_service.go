package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TenantService 珠宝商店铺（租户）目录服务
type TenantService struct {
	shopRepo          repository.ShopRepository
	settingsRepo      repository.SettingsRepository
	tenantProductRepo repository.TenantProductRepository
	visibilityRepo    repository.VisibilityRepository
	credentialRepo    repository.CredentialRepository
	dashboardRepo     repository.DashboardRepository
	locker            *KeyedLocker
}

// NewTenantService 创建店铺服务
func NewTenantService(
	shopRepo repository.ShopRepository,
	settingsRepo repository.SettingsRepository,
	tenantProductRepo repository.TenantProductRepository,
	visibilityRepo repository.VisibilityRepository,
	credentialRepo repository.CredentialRepository,
	dashboardRepo repository.DashboardRepository,
	locker *KeyedLocker,
) *TenantService {
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return &TenantService{
		shopRepo:          shopRepo,
		settingsRepo:      settingsRepo,
		tenantProductRepo: tenantProductRepo,
		visibilityRepo:    visibilityRepo,
		credentialRepo:    credentialRepo,
		dashboardRepo:     dashboardRepo,
		locker:            locker,
	}
}

// ShopInput 店铺创建/更新参数
type ShopInput struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	OwnerName   string      `json:"owner_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	IsActive    *bool       `json:"is_active"`
	JoinedDate  models.Date `json:"joined_date"`
	TotalOrders *int64      `json:"total_orders"`
}

// SettingsInput 店铺设置参数，空字段按资料回填
type SettingsInput struct {
	Logo               string           `json:"logo"`
	StoreName          string           `json:"store_name"`
	Tagline            string           `json:"tagline"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Address            string           `json:"address"`
	HeroTitle          string           `json:"hero_title"`
	HeroSubtitle       string           `json:"hero_subtitle"`
	HeroBannerURL      string           `json:"hero_banner_url"`
	PrimaryColor       string           `json:"primary_color"`
	AccentColor        string           `json:"accent_color"`
	PriceMarkupPercent *decimal.Decimal `json:"price_markup_percent"`
	ShowPriceInCatalog *bool            `json:"show_price_in_catalog"`
}

// SettingsView 店铺生效设置
type SettingsView struct {
	Settings models.TenantSettings `json:"settings"`
	IsStored bool                  `json:"is_stored"`
}

// List 分页查询店铺
func (s *TenantService) List(filter repository.ShopListFilter) ([]models.JewelerShop, int64, error) {
	return s.shopRepo.List(filter)
}

// ListAll 返回全部店铺
func (s *TenantService) ListAll() ([]models.JewelerShop, error) {
	return s.shopRepo.ListAll()
}

// Get 获取店铺（含设置）
func (s *TenantService) Get(id string) (*models.JewelerShop, error) {
	shop, err := s.shopRepo.GetByID(strings.TrimSpace(id), true)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}
	return shop, nil
}

// Create 新增店铺并同步计数器
func (s *TenantService) Create(input ShopInput) (*models.JewelerShop, error) {
	shop, err := buildShop(input)
	if err != nil {
		return nil, err
	}
	if shop.ID == "" {
		shop.ID = uuid.NewString()
	}
	if shop.JoinedDate.IsZero() {
		shop.JoinedDate = models.Today()
	}

	unlock := s.locker.Lock(shop.ID)
	defer unlock()
	err = s.shopRepo.Transaction(func(tx *gorm.DB) error {
		shopRepo := s.shopRepo.WithTx(tx)
		existing, err := shopRepo.GetByID(shop.ID, false)
		if err != nil {
			return err
		}
		if existing != nil {
			return newValidationError("id", "already exists")
		}
		if err := shopRepo.Create(shop); err != nil {
			return err
		}
		return s.dashboardRepo.WithTx(tx).AdjustShopCounters(1, activeCount(shop.IsActive))
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// Update 按 ID 替换店铺资料，仅在启用状态实际翻转时调整活跃计数
func (s *TenantService) Update(id string, input ShopInput) (*models.JewelerShop, error) {
	id = strings.TrimSpace(id)
	next, err := buildShop(input)
	if err != nil {
		return nil, err
	}
	next.ID = id

	unlock := s.locker.Lock(id)
	defer unlock()
	err = s.shopRepo.Transaction(func(tx *gorm.DB) error {
		shopRepo := s.shopRepo.WithTx(tx)
		existing, err := shopRepo.GetByID(id, false)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrTenantNotFound
		}
		if input.IsActive == nil {
			next.IsActive = existing.IsActive
		}
		if input.TotalOrders == nil {
			next.TotalOrders = existing.TotalOrders
		}
		if next.JoinedDate.IsZero() {
			next.JoinedDate = existing.JoinedDate
		}
		if err := shopRepo.Update(next); err != nil {
			return err
		}
		delta := activeCount(next.IsActive) - activeCount(existing.IsActive)
		return s.dashboardRepo.WithTx(tx).AdjustShopCounters(0, delta)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateShopCatalog(id)
	return s.Get(id)
}

// Delete 删除店铺及其设置、自有商品、可见性记录与绑定凭证
func (s *TenantService) Delete(id string) error {
	id = strings.TrimSpace(id)
	unlock := s.locker.Lock(id)
	defer unlock()

	var removedCredentials []string
	err := s.shopRepo.Transaction(func(tx *gorm.DB) error {
		shopRepo := s.shopRepo.WithTx(tx)
		existing, err := shopRepo.GetByID(id, false)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrTenantNotFound
		}
		credentials, err := s.credentialRepo.WithTx(tx).List(constants.RoleJewelerAdmin)
		if err != nil {
			return err
		}
		for _, credential := range credentials {
			if credential.JewelerShopID == id {
				removedCredentials = append(removedCredentials, credential.ID)
			}
		}
		if err := s.credentialRepo.WithTx(tx).DeleteByShop(id); err != nil {
			return err
		}
		if err := s.tenantProductRepo.WithTx(tx).DeleteByShop(id); err != nil {
			return err
		}
		if err := s.settingsRepo.WithTx(tx).DeleteByShop(id); err != nil {
			return err
		}
		// 同 id 重新创建的店铺不得继承旧的隐藏记录
		if err := s.visibilityRepo.WithTx(tx).DeleteByShop(id); err != nil {
			return err
		}
		if _, err := shopRepo.Delete(id); err != nil {
			return err
		}
		return s.dashboardRepo.WithTx(tx).AdjustShopCounters(-1, -activeCount(existing.IsActive))
	})
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, credentialID := range removedCredentials {
		_ = cache.DelCredentialAuthState(ctx, credentialID)
	}
	s.invalidateShopCatalog(id)
	return nil
}

// GetSettingsView 返回生效设置（已保存或按资料回填）
func (s *TenantService) GetSettingsView(shopID string) (*SettingsView, error) {
	shop, err := s.Get(shopID)
	if err != nil {
		return nil, err
	}
	if shop.Settings != nil {
		return &SettingsView{Settings: *shop.Settings, IsStored: true}, nil
	}
	return &SettingsView{Settings: fillSettingsDefaults(shop, models.TenantSettings{ShopID: shop.ID}), IsStored: false}, nil
}

// UpdateSettings 保存店铺设置，空字段按店铺资料回填
func (s *TenantService) UpdateSettings(shopID string, input SettingsInput) (*models.TenantSettings, error) {
	shopID = strings.TrimSpace(shopID)
	markup := decimal.Zero
	if input.PriceMarkupPercent != nil {
		markup = *input.PriceMarkupPercent
		if markup.IsNegative() || markup.GreaterThan(hundredPercent) {
			return nil, newValidationError("price_markup_percent", "must be within 0-100")
		}
	}

	unlock := s.locker.Lock(shopID)
	defer unlock()
	var saved models.TenantSettings
	err := s.shopRepo.Transaction(func(tx *gorm.DB) error {
		shop, err := s.shopRepo.WithTx(tx).GetByID(shopID, true)
		if err != nil {
			return err
		}
		if shop == nil {
			return ErrTenantNotFound
		}
		showPrice := false
		if input.PriceMarkupPercent == nil && shop.Settings != nil {
			markup = shop.Settings.PriceMarkupPercent
		}
		if input.ShowPriceInCatalog != nil {
			showPrice = *input.ShowPriceInCatalog
		} else if shop.Settings != nil {
			showPrice = shop.Settings.ShowPriceInCatalog
		}
		saved = fillSettingsDefaults(shop, models.TenantSettings{
			ShopID:             shop.ID,
			Logo:               strings.TrimSpace(input.Logo),
			StoreName:          strings.TrimSpace(input.StoreName),
			Tagline:            strings.TrimSpace(input.Tagline),
			Email:              strings.TrimSpace(input.Email),
			Phone:              strings.TrimSpace(input.Phone),
			Address:            strings.TrimSpace(input.Address),
			HeroTitle:          strings.TrimSpace(input.HeroTitle),
			HeroSubtitle:       strings.TrimSpace(input.HeroSubtitle),
			HeroBannerURL:      strings.TrimSpace(input.HeroBannerURL),
			PrimaryColor:       strings.TrimSpace(input.PrimaryColor),
			AccentColor:        strings.TrimSpace(input.AccentColor),
			PriceMarkupPercent: markup,
			ShowPriceInCatalog: showPrice,
		})
		return s.settingsRepo.WithTx(tx).Upsert(&saved)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateShopCatalog(shopID)
	return &saved, nil
}

func (s *TenantService) invalidateShopCatalog(shopID string) {
	if err := cache.InvalidateShopCatalog(context.Background(), shopID); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "shop_id", shopID, "error", err)
	}
}

var hundredPercent = decimal.NewFromInt(100)

func buildShop(input ShopInput) (*models.JewelerShop, error) {
	shop := &models.JewelerShop{
		ID:         strings.TrimSpace(input.ID),
		Name:       strings.TrimSpace(input.Name),
		OwnerName:  strings.TrimSpace(input.OwnerName),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Address:    strings.TrimSpace(input.Address),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		IsActive:   true,
		JoinedDate: input.JoinedDate,
	}
	if shop.Name == "" {
		return nil, newValidationError("name", "required")
	}
	if shop.OwnerName == "" {
		return nil, newValidationError("owner_name", "required")
	}
	if shop.Email == "" {
		return nil, newValidationError("email", "required")
	}
	if input.IsActive != nil {
		shop.IsActive = *input.IsActive
	}
	if input.TotalOrders != nil {
		if *input.TotalOrders < 0 {
			return nil, newValidationError("total_orders", "must be >= 0")
		}
		shop.TotalOrders = *input.TotalOrders
	}
	return shop, nil
}

func activeCount(isActive bool) int64 {
	if isActive {
		return 1
	}
	return 0
}

// fillSettingsDefaults 空字段按店铺资料回填
func fillSettingsDefaults(shop *models.JewelerShop, settings models.TenantSettings) models.TenantSettings {
	if settings.StoreName == "" {
		settings.StoreName = shop.Name
	}
	if settings.Email == "" {
		settings.Email = shop.Email
	}
	if settings.Phone == "" {
		settings.Phone = shop.Phone
	}
	if settings.Address == "" {
		settings.Address = fmt.Sprintf("%s, %s, %s", shop.Address, shop.City, shop.State)
	}
	if settings.HeroTitle == "" {
		settings.HeroTitle = "Welcome to " + shop.Name
	}
	if settings.HeroSubtitle == "" {
		settings.HeroSubtitle = constants.DefaultHeroSubtitle
	}
	if settings.PrimaryColor == "" {
		settings.PrimaryColor = constants.DefaultPrimaryColor
	}
	if settings.AccentColor == "" {
		settings.AccentColor = constants.DefaultAccentColor
	}
	return settings
}
