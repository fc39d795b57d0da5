package repository

import (
	"errors"
	"strings"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShopRepository 珠宝商店铺数据访问接口
type ShopRepository interface {
	List(filter ShopListFilter) ([]models.JewelerShop, int64, error)
	ListAll() ([]models.JewelerShop, error)
	GetByID(id string, withSettings bool) (*models.JewelerShop, error)
	Create(shop *models.JewelerShop) error
	Update(shop *models.JewelerShop) error
	Delete(id string) (int64, error)
	Count() (int64, error)
	SumTotalOrders() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ShopRepository
}

// GormShopRepository GORM 实现
type GormShopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓库
func NewShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShopRepository) WithTx(tx *gorm.DB) ShopRepository {
	if tx == nil {
		return r
	}
	return &GormShopRepository{db: tx}
}

// Transaction 执行事务
func (r *GormShopRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 分页查询
func (r *GormShopRepository) List(filter ShopListFilter) ([]models.JewelerShop, int64, error) {
	query := r.db.Model(&models.JewelerShop{})
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := likePattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(owner_name) LIKE ? OR LOWER(city) LIKE ?", pattern, pattern, pattern)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	var shops []models.JewelerShop
	total, err := countAndFind(query.Order("joined_date ASC, id ASC"), filter.Page, filter.PageSize, &shops)
	if err != nil {
		return nil, 0, err
	}
	return shops, total, nil
}

// ListAll 返回全部店铺
func (r *GormShopRepository) ListAll() ([]models.JewelerShop, error) {
	var shops []models.JewelerShop
	if err := r.db.Order("joined_date ASC, id ASC").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// GetByID 根据 ID 获取店铺
func (r *GormShopRepository) GetByID(id string, withSettings bool) (*models.JewelerShop, error) {
	var shop models.JewelerShop
	query := r.db
	if withSettings {
		query = query.Preload("Settings")
	}
	if err := query.First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

// Create 创建店铺（不级联设置）
func (r *GormShopRepository) Create(shop *models.JewelerShop) error {
	return r.db.Omit(clause.Associations).Create(shop).Error
}

// Update 整体替换店铺字段
func (r *GormShopRepository) Update(shop *models.JewelerShop) error {
	return r.db.Model(&models.JewelerShop{}).
		Where("id = ?", shop.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(shop).Error
}

// Delete 删除店铺
func (r *GormShopRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&models.JewelerShop{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Count 店铺记录数
func (r *GormShopRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.JewelerShop{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SumTotalOrders 订单数合计
func (r *GormShopRepository) SumTotalOrders() (int64, error) {
	var sum int64
	if err := r.db.Model(&models.JewelerShop{}).Select("COALESCE(SUM(total_orders), 0)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}
