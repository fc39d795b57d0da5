package service

import (
	"context"
	"strings"
	"time"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"gorm.io/gorm"
)

// VisibilityService 平台商品在店铺内的可见性服务
type VisibilityService struct {
	shopRepo       repository.ShopRepository
	productRepo    repository.ProductRepository
	visibilityRepo repository.VisibilityRepository
	locker         *KeyedLocker
}

// NewVisibilityService 创建可见性服务
func NewVisibilityService(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	visibilityRepo repository.VisibilityRepository,
	locker *KeyedLocker,
) *VisibilityService {
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return &VisibilityService{
		shopRepo:       shopRepo,
		productRepo:    productRepo,
		visibilityRepo: visibilityRepo,
		locker:         locker,
	}
}

// EffectiveVisibility 返回平台商品在店铺内的生效可见性
func (s *VisibilityService) EffectiveVisibility(productID, shopID string) (bool, error) {
	return effectiveVisibility(s.visibilityRepo, productID, shopID)
}

func effectiveVisibility(repo repository.VisibilityRepository, productID, shopID string) (bool, error) {
	override, err := repo.Get(productID, shopID)
	if err != nil {
		return false, err
	}
	if override == nil {
		// 无例外记录：默认可见
		return true, nil
	}
	return override.IsVisible, nil
}

// visibilityIndex 店铺例外记录索引
type visibilityIndex map[string]bool

func buildVisibilityIndex(overrides []models.VisibilityOverride) visibilityIndex {
	index := make(visibilityIndex, len(overrides))
	for _, override := range overrides {
		index[override.ProductID] = override.IsVisible
	}
	return index
}

func (idx visibilityIndex) isVisible(productID string) bool {
	visible, ok := idx[productID]
	if !ok {
		return true
	}
	return visible
}

// Toggle 翻转平台商品在店铺内的可见性，返回翻转后的值
func (s *VisibilityService) Toggle(productID, shopID string) (bool, error) {
	productID = strings.TrimSpace(productID)
	shopID = strings.TrimSpace(shopID)

	unlock := s.locker.Lock(shopID)
	defer unlock()
	var next bool
	err := s.shopRepo.Transaction(func(tx *gorm.DB) error {
		shop, err := s.shopRepo.WithTx(tx).GetByID(shopID, false)
		if err != nil {
			return err
		}
		if shop == nil {
			return ErrTenantNotFound
		}
		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		repo := s.visibilityRepo.WithTx(tx)
		current, err := effectiveVisibility(repo, productID, shopID)
		if err != nil {
			return err
		}
		next = !current
		return repo.Upsert(&models.VisibilityOverride{
			ProductID:     productID,
			JewelerShopID: shopID,
			IsVisible:     next,
			UpdatedAt:     time.Now(),
		})
	})
	if err != nil {
		return false, err
	}
	if err := cache.InvalidateShopCatalog(context.Background(), shopID); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "shop_id", shopID, "error", err)
	}
	return next, nil
}
