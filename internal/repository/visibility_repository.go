package repository

import (
	"errors"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisibilityRepository 可见性例外记录数据访问接口
type VisibilityRepository interface {
	Get(productID, shopID string) (*models.VisibilityOverride, error)
	ListByShop(shopID string) ([]models.VisibilityOverride, error)
	Upsert(override *models.VisibilityOverride) error
	CreateBatch(overrides []models.VisibilityOverride) error
	DeleteByShop(shopID string) error
	DeleteByProduct(productID string) error
	WithTx(tx *gorm.DB) VisibilityRepository
}

// GormVisibilityRepository GORM 实现
type GormVisibilityRepository struct {
	db *gorm.DB
}

// NewVisibilityRepository 创建可见性仓库
func NewVisibilityRepository(db *gorm.DB) *GormVisibilityRepository {
	return &GormVisibilityRepository{db: db}
}

// WithTx 绑定事务
func (r *GormVisibilityRepository) WithTx(tx *gorm.DB) VisibilityRepository {
	if tx == nil {
		return r
	}
	return &GormVisibilityRepository{db: tx}
}

// Get 获取 (商品, 店铺) 的例外记录，不存在返回 nil
func (r *GormVisibilityRepository) Get(productID, shopID string) (*models.VisibilityOverride, error) {
	var override models.VisibilityOverride
	err := r.db.Where("product_id = ? AND jeweler_shop_id = ?", productID, shopID).First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

// ListByShop 店铺的全部例外记录
func (r *GormVisibilityRepository) ListByShop(shopID string) ([]models.VisibilityOverride, error) {
	var overrides []models.VisibilityOverride
	if err := r.db.Where("jeweler_shop_id = ?", shopID).Order("id ASC").Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

// Upsert 写入例外记录，(商品, 店铺) 唯一
func (r *GormVisibilityRepository) Upsert(override *models.VisibilityOverride) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "jeweler_shop_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_visible", "updated_at"}),
	}).Create(override).Error
}

// CreateBatch 批量写入
func (r *GormVisibilityRepository) CreateBatch(overrides []models.VisibilityOverride) error {
	if len(overrides) == 0 {
		return nil
	}
	return r.db.Create(&overrides).Error
}

// DeleteByShop 删除店铺的例外记录
func (r *GormVisibilityRepository) DeleteByShop(shopID string) error {
	return r.db.Where("jeweler_shop_id = ?", shopID).Delete(&models.VisibilityOverride{}).Error
}

// DeleteByProduct 删除平台商品的例外记录
func (r *GormVisibilityRepository) DeleteByProduct(productID string) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.VisibilityOverride{}).Error
}
