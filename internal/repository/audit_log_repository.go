package repository

import (
	"strings"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository 目录审计日志数据访问接口
type AuditLogRepository interface {
	Create(log *models.CatalogAuditLog) error
	List(filter AuditLogListFilter) ([]models.CatalogAuditLog, int64, error)
}

// GormAuditLogRepository GORM 实现
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建审计日志仓库
func NewAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Create 写入审计日志
func (r *GormAuditLogRepository) Create(log *models.CatalogAuditLog) error {
	return r.db.Create(log).Error
}

// List 分页查询
func (r *GormAuditLogRepository) List(filter AuditLogListFilter) ([]models.CatalogAuditLog, int64, error) {
	query := r.db.Model(&models.CatalogAuditLog{})
	if action := strings.TrimSpace(filter.Action); action != "" {
		query = query.Where("action = ?", action)
	}
	if shopID := strings.TrimSpace(filter.ShopID); shopID != "" {
		query = query.Where("shop_id = ?", shopID)
	}
	if actor := strings.TrimSpace(filter.Actor); actor != "" {
		query = query.Where("actor = ?", actor)
	}
	var logs []models.CatalogAuditLog
	total, err := countAndFind(query.Order("id DESC"), filter.Page, filter.PageSize, &logs)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
