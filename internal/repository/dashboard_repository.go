package repository

import (
	"errors"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 看板计数器数据访问接口
type DashboardRepository interface {
	GetCounter() (*models.DashboardCounter, error)
	SaveCounter(counter *models.DashboardCounter) error
	AdjustShopCounters(totalDelta, activeDelta int64) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) DashboardRepository
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建看板仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDashboardRepository) WithTx(tx *gorm.DB) DashboardRepository {
	if tx == nil {
		return r
	}
	return &GormDashboardRepository{db: tx}
}

// Transaction 执行事务
func (r *GormDashboardRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetCounter 获取计数器单行，不存在返回 nil
func (r *GormDashboardRepository) GetCounter() (*models.DashboardCounter, error) {
	var counter models.DashboardCounter
	if err := r.db.First(&counter, models.DashboardCounterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &counter, nil
}

// SaveCounter 写入计数器单行
func (r *GormDashboardRepository) SaveCounter(counter *models.DashboardCounter) error {
	counter.ID = models.DashboardCounterID
	return r.db.Save(counter).Error
}

// AdjustShopCounters 原子调整店铺计数
func (r *GormDashboardRepository) AdjustShopCounters(totalDelta, activeDelta int64) error {
	if totalDelta == 0 && activeDelta == 0 {
		return nil
	}
	result := r.db.Model(&models.DashboardCounter{}).
		Where("id = ?", models.DashboardCounterID).
		Updates(map[string]interface{}{
			"total_shops":  gorm.Expr("total_shops + ?", totalDelta),
			"active_shops": gorm.Expr("active_shops + ?", activeDelta),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
