package repository

import (
	"errors"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
)

// TenantProductRepository 店铺自有商品数据访问接口
type TenantProductRepository interface {
	ListByShop(shopID string) ([]models.TenantProduct, error)
	GetByID(id string) (*models.TenantProduct, error)
	Create(product *models.TenantProduct) error
	Update(product *models.TenantProduct) error
	Delete(id string) (int64, error)
	DeleteByShop(shopID string) error
	NextPosition(shopID string) (int64, error)
	Count() (int64, error)
	CountByShop(shopID string) (int64, error)
	WithTx(tx *gorm.DB) TenantProductRepository
}

// GormTenantProductRepository GORM 实现
type GormTenantProductRepository struct {
	db *gorm.DB
}

// NewTenantProductRepository 创建店铺商品仓库
func NewTenantProductRepository(db *gorm.DB) *GormTenantProductRepository {
	return &GormTenantProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormTenantProductRepository) WithTx(tx *gorm.DB) TenantProductRepository {
	if tx == nil {
		return r
	}
	return &GormTenantProductRepository{db: tx}
}

// ListByShop 按追加顺序返回店铺商品
func (r *GormTenantProductRepository) ListByShop(shopID string) ([]models.TenantProduct, error) {
	var products []models.TenantProduct
	if err := r.db.Where("jeweler_shop_id = ?", shopID).Order("position ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取
func (r *GormTenantProductRepository) GetByID(id string) (*models.TenantProduct, error) {
	var product models.TenantProduct
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建
func (r *GormTenantProductRepository) Create(product *models.TenantProduct) error {
	return r.db.Create(product).Error
}

// Update 整体替换（所属店铺不可变）
func (r *GormTenantProductRepository) Update(product *models.TenantProduct) error {
	return r.db.Model(&models.TenantProduct{}).
		Where("id = ? AND jeweler_shop_id = ?", product.ID, product.JewelerShopID).
		Select("*").
		Omit("jeweler_shop_id").
		Updates(product).Error
}

// Delete 删除
func (r *GormTenantProductRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&models.TenantProduct{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByShop 删除店铺全部商品
func (r *GormTenantProductRepository) DeleteByShop(shopID string) error {
	return r.db.Where("jeweler_shop_id = ?", shopID).Delete(&models.TenantProduct{}).Error
}

// NextPosition 店内下一个追加序号
func (r *GormTenantProductRepository) NextPosition(shopID string) (int64, error) {
	var maxPosition int64
	if err := r.db.Model(&models.TenantProduct{}).Where("jeweler_shop_id = ?", shopID).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
		return 0, err
	}
	return maxPosition + 1, nil
}

// Count 全部店铺商品数
func (r *GormTenantProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.TenantProduct{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountByShop 店铺商品数
func (r *GormTenantProductRepository) CountByShop(shopID string) (int64, error) {
	var total int64
	if err := r.db.Model(&models.TenantProduct{}).Where("jeweler_shop_id = ?", shopID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
