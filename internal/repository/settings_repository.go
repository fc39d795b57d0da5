package repository

import (
	"errors"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository 店铺设置数据访问接口
type SettingsRepository interface {
	GetByShop(shopID string) (*models.TenantSettings, error)
	Upsert(settings *models.TenantSettings) error
	DeleteByShop(shopID string) error
	WithTx(tx *gorm.DB) SettingsRepository
}

// GormSettingsRepository GORM 实现
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建店铺设置仓库
func NewSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSettingsRepository) WithTx(tx *gorm.DB) SettingsRepository {
	if tx == nil {
		return r
	}
	return &GormSettingsRepository{db: tx}
}

// GetByShop 获取店铺设置，不存在返回 nil
func (r *GormSettingsRepository) GetByShop(shopID string) (*models.TenantSettings, error) {
	var settings models.TenantSettings
	if err := r.db.First(&settings, "shop_id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert 写入或覆盖店铺设置
func (r *GormSettingsRepository) Upsert(settings *models.TenantSettings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shop_id"}},
		UpdateAll: true,
	}).Create(settings).Error
}

// DeleteByShop 删除店铺设置
func (r *GormSettingsRepository) DeleteByShop(shopID string) error {
	return r.db.Where("shop_id = ?", shopID).Delete(&models.TenantSettings{}).Error
}
