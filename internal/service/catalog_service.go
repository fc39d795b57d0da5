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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxDecreasePercentage = decimal.NewFromInt(100)

// CatalogService 平台商品目录服务
type CatalogService struct {
	productRepo     repository.ProductRepository
	locker          *KeyedLocker
	defaultImageURL string
}

// NewCatalogService 创建平台目录服务
func NewCatalogService(productRepo repository.ProductRepository, locker *KeyedLocker, defaultImageURL string) *CatalogService {
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return &CatalogService{
		productRepo:     productRepo,
		locker:          locker,
		defaultImageURL: defaultImageURL,
	}
}

// BulkAdjustInput 批量调价参数
type BulkAdjustInput struct {
	Percentage decimal.Decimal `json:"percentage"`
	Direction  string          `json:"direction"`
}

// List 分页查询平台商品
func (s *CatalogService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// ListAll 返回全部平台商品（追加顺序）
func (s *CatalogService) ListAll() ([]models.Product, error) {
	return s.productRepo.ListAll()
}

// Get 获取平台商品
func (s *CatalogService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 新增平台商品，未提供 ID 时生成唯一 ID
func (s *CatalogService) Create(input ProductInput) (*models.Product, error) {
	fields, err := normalizeProductInput(input, s.defaultImageURL)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}
	today := models.Today()
	product := &models.Product{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Category:    fields.Category,
		ImageURL:    fields.ImageURL,
		ImageURLs:   fields.ImageURLs,
		InStock:     fields.InStock,
		MinOrder:    fields.MinOrder,
		CreatedAt:   today,
		UpdatedAt:   today,
	}

	unlock := s.locker.Lock(constants.PlatformLockKey)
	defer unlock()
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		existing, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if existing != nil {
			return newValidationError("id", "already exists")
		}
		position, err := repo.NextPosition()
		if err != nil {
			return err
		}
		product.Position = position
		return repo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateCatalogs()
	return product, nil
}

// Update 按 ID 整体替换平台商品，保留创建日期并刷新更新日期
func (s *CatalogService) Update(id string, input ProductInput) (*models.Product, error) {
	id = strings.TrimSpace(id)
	fields, err := normalizeProductInput(input, s.defaultImageURL)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(constants.PlatformLockKey)
	defer unlock()
	var updated *models.Product
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		existing, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
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
	s.invalidateCatalogs()
	return updated, nil
}

// Delete 删除平台商品，可见性记录保留为孤儿记录
func (s *CatalogService) Delete(id string) error {
	unlock := s.locker.Lock(constants.PlatformLockKey)
	defer unlock()
	affected, err := s.productRepo.Delete(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	s.invalidateCatalogs()
	return nil
}

// BulkAdjustPrices 按百分比整体调整平台商品价格，返回调整数量
// 全部成功或全部回滚，店铺自有商品不受影响
func (s *CatalogService) BulkAdjustPrices(percentage decimal.Decimal, direction string) (int, error) {
	if percentage.IsNegative() {
		return 0, ErrInvalidPercentage
	}
	signed := percentage
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case constants.PriceDirectionIncrease:
	case constants.PriceDirectionDecrease:
		if percentage.GreaterThan(maxDecreasePercentage) {
			return 0, ErrInvalidPercentage
		}
		signed = percentage.Neg()
	default:
		return 0, ErrInvalidDirection
	}

	unlock := s.locker.Lock(constants.PlatformLockKey)
	defer unlock()
	adjusted := 0
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		products, err := repo.ListAll()
		if err != nil {
			return err
		}
		today := models.Today()
		for _, product := range products {
			if err := repo.UpdatePrice(product.ID, product.Price.ScalePercent(signed), today); err != nil {
				return err
			}
			adjusted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Infow("catalog_bulk_adjust_applied",
		"percentage", percentage.String(),
		"direction", direction,
		"adjusted", adjusted,
	)
	s.invalidateCatalogs()
	return adjusted, nil
}

func (s *CatalogService) invalidateCatalogs() {
	if err := cache.InvalidateAllCatalogs(context.Background()); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "scope", "all", "error", err)
	}
}
