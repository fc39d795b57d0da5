package repository

import (
	"errors"
	"strings"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 平台商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	ListAll() ([]models.Product, error)
	ListRecent(limit int) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpdatePrice(id string, price models.Money, updatedAt models.Date) error
	Delete(id string) (int64, error)
	NextPosition() (int64, error)
	Count() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 分页查询（后台列表）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := likePattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	var products []models.Product
	total, err := countAndFind(query.Order("position ASC, id ASC"), filter.Page, filter.PageSize, &products)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListAll 按追加顺序返回全部平台商品
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("position ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListRecent 最新创建的商品
func (r *GormProductRepository) ListRecent(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 5
	}
	var products []models.Product
	if err := r.db.Order("created_at DESC, position DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 整体替换商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Model(&models.Product{}).Where("id = ?", product.ID).Select("*").Updates(product).Error
}

// UpdatePrice 仅更新价格
func (r *GormProductRepository) UpdatePrice(id string, price models.Money, updatedAt models.Date) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"price":      price,
		"updated_at": updatedAt,
	}).Error
}

// Delete 删除商品，返回影响行数
func (r *GormProductRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&models.Product{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// NextPosition 下一个追加序号
func (r *GormProductRepository) NextPosition() (int64, error) {
	var maxPosition int64
	if err := r.db.Model(&models.Product{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
		return 0, err
	}
	return maxPosition + 1, nil
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
