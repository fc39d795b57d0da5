package service

import (
	"context"
	"strings"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantCatalogService 店铺自有商品服务
type TenantCatalogService struct {
	shopRepo          repository.ShopRepository
	tenantProductRepo repository.TenantProductRepository
	locker            *KeyedLocker
	defaultImageURL   string
}

// NewTenantCatalogService 创建店铺商品服务
func NewTenantCatalogService(
	shopRepo repository.ShopRepository,
	tenantProductRepo repository.TenantProductRepository,
	locker *KeyedLocker,
	defaultImageURL string,
) *TenantCatalogService {
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return &TenantCatalogService{
		shopRepo:          shopRepo,
		tenantProductRepo: tenantProductRepo,
		locker:            locker,
		defaultImageURL:   defaultImageURL,
	}
}

// List 返回店铺全部自有商品
func (s *TenantCatalogService) List(shopID string) ([]models.TenantProduct, error) {
	shopID = strings.TrimSpace(shopID)
	if err := s.ensureShop(s.shopRepo, shopID); err != nil {
		return nil, err
	}
	return s.tenantProductRepo.ListByShop(shopID)
}

// Get 获取店铺自有商品，跨店铺访问视为不存在
func (s *TenantCatalogService) Get(shopID, id string) (*models.TenantProduct, error) {
	product, err := s.tenantProductRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if product == nil || product.JewelerShopID != strings.TrimSpace(shopID) {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 新增店铺自有商品
func (s *TenantCatalogService) Create(shopID string, input ProductInput) (*models.TenantProduct, error) {
	shopID = strings.TrimSpace(shopID)
	fields, err := normalizeProductInput(input, s.defaultImageURL)
	if err != nil {
		return nil, err
	}
	today := models.Today()
	product := &models.TenantProduct{
		ID:            constants.TenantProductIDPrefix + uuid.NewString(),
		JewelerShopID: shopID,
		Name:          fields.Name,
		Description:   fields.Description,
		Price:         fields.Price,
		Category:      fields.Category,
		ImageURL:      fields.ImageURL,
		ImageURLs:     fields.ImageURLs,
		InStock:       fields.InStock,
		MinOrder:      fields.MinOrder,
		IsOwnProduct:  true,
		CreatedAt:     today,
		UpdatedAt:     today,
	}

	unlock := s.locker.Lock(shopID)
	defer unlock()
	err = s.shopRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.ensureShop(s.shopRepo.WithTx(tx), shopID); err != nil {
			return err
		}
		repo := s.tenantProductRepo.WithTx(tx)
		position, err := repo.NextPosition(shopID)
		if err != nil {
			return err
		}
		product.Position = position
		return repo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(shopID)
	return product, nil
}

// Update 替换店铺自有商品，所属店铺不可变
func (s *TenantCatalogService) Update(shopID, id string, input ProductInput) (*models.TenantProduct, error) {
	shopID = strings.TrimSpace(shopID)
	id = strings.TrimSpace(id)
	fields, err := normalizeProductInput(input, s.defaultImageURL)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(shopID)
	defer unlock()
	var updated *models.TenantProduct
	err = s.shopRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.tenantProductRepo.WithTx(tx)
		existing, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil || existing.JewelerShopID != shopID {
			return ErrProductNotFound
		}
		existing.Name = fields.Name
		existing.Description = fields.Description
		existing.Price = fields.Price
		existing.Category = fields.Category
		existing.ImageURL = fields.ImageURL
		existing.ImageURLs = fields.ImageURLs
		existing.InStock = fields.InStock
		existing.MinOrder = fields.MinOrder
		existing.IsOwnProduct = true
		existing.UpdatedAt = models.Today()
		if err := repo.Update(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(shopID)
	return updated, nil
}

// Delete 删除店铺自有商品
func (s *TenantCatalogService) Delete(shopID, id string) error {
	shopID = strings.TrimSpace(shopID)
	unlock := s.locker.Lock(shopID)
	defer unlock()
	err := s.shopRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.tenantProductRepo.WithTx(tx)
		existing, err := repo.GetByID(strings.TrimSpace(id))
		if err != nil {
			return err
		}
		if existing == nil || existing.JewelerShopID != shopID {
			return ErrProductNotFound
		}
		_, err = repo.Delete(existing.ID)
		return err
	})
	if err != nil {
		return err
	}
	s.invalidate(shopID)
	return nil
}

func (s *TenantCatalogService) ensureShop(repo repository.ShopRepository, shopID string) error {
	shop, err := repo.GetByID(shopID, false)
	if err != nil {
		return err
	}
	if shop == nil {
		return ErrTenantNotFound
	}
	return nil
}

func (s *TenantCatalogService) invalidate(shopID string) {
	if err := cache.InvalidateShopCatalog(context.Background(), shopID); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "shop_id", shopID, "error", err)
	}
}
