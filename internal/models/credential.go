package models

import "time"

// Credential 登录凭证表（超级管理员与店铺管理员）
type Credential struct {
	ID            string     `gorm:"primaryKey;type:varchar(64)" json:"id"`                   // 主键
	Username      string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"username"`  // 账号
	PasswordHash  string     `gorm:"not null" json:"-"`                                       // 密码哈希
	Role          string     `gorm:"type:varchar(32);not null;index" json:"role"`             // 角色 super_admin/jeweler_admin
	JewelerShopID string     `gorm:"type:varchar(64);index" json:"jeweler_shop_id,omitempty"` // 绑定店铺（仅店铺管理员）
	TokenVersion  uint64     `gorm:"not null;default:0" json:"-"`                             // Token 版本
	LastLoginAt   *time.Time `json:"last_login_at"`                                           // 最后登录时间
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt     time.Time  `json:"updated_at"`                                              // 更新时间
}

// TableName 指定表名
func (Credential) TableName() string {
	return "credentials"
}
