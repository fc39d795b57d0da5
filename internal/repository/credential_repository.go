package repository

import (
	"errors"
	"strings"

	"github.com/jewelhub/internal/models"

	"gorm.io/gorm"
)

// CredentialRepository 登录凭证数据访问接口
type CredentialRepository interface {
	GetByUsername(username string) (*models.Credential, error)
	GetByID(id string) (*models.Credential, error)
	List(role string) ([]models.Credential, error)
	Create(credential *models.Credential) error
	Update(credential *models.Credential) error
	Delete(id string) (int64, error)
	DeleteByShop(shopID string) error
	CountByUsername(username, excludeID string) (int64, error)
	WithTx(tx *gorm.DB) CredentialRepository
}

// GormCredentialRepository GORM 实现
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository 创建凭证仓库
func NewCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCredentialRepository) WithTx(tx *gorm.DB) CredentialRepository {
	if tx == nil {
		return r
	}
	return &GormCredentialRepository{db: tx}
}

// GetByUsername 根据账号获取
func (r *GormCredentialRepository) GetByUsername(username string) (*models.Credential, error) {
	var credential models.Credential
	if err := r.db.Where("username = ?", strings.TrimSpace(username)).First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

// GetByID 根据 ID 获取
func (r *GormCredentialRepository) GetByID(id string) (*models.Credential, error) {
	var credential models.Credential
	if err := r.db.First(&credential, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

// List 按角色列出，role 为空时返回全部
func (r *GormCredentialRepository) List(role string) ([]models.Credential, error) {
	query := r.db.Model(&models.Credential{})
	if role = strings.TrimSpace(role); role != "" {
		query = query.Where("role = ?", role)
	}
	var credentials []models.Credential
	if err := query.Order("created_at ASC, id ASC").Find(&credentials).Error; err != nil {
		return nil, err
	}
	return credentials, nil
}

// Create 创建
func (r *GormCredentialRepository) Create(credential *models.Credential) error {
	return r.db.Create(credential).Error
}

// Update 更新
func (r *GormCredentialRepository) Update(credential *models.Credential) error {
	return r.db.Save(credential).Error
}

// Delete 删除
func (r *GormCredentialRepository) Delete(id string) (int64, error) {
	result := r.db.Delete(&models.Credential{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// DeleteByShop 删除店铺绑定的凭证
func (r *GormCredentialRepository) DeleteByShop(shopID string) error {
	return r.db.Where("jeweler_shop_id = ?", shopID).Delete(&models.Credential{}).Error
}

// CountByUsername 账号占用数，可排除指定 ID
func (r *GormCredentialRepository) CountByUsername(username, excludeID string) (int64, error) {
	query := r.db.Model(&models.Credential{}).Where("username = ?", strings.TrimSpace(username))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
