package models

import "time"

// CatalogAuditLog 目录变更审计日志
type CatalogAuditLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	RequestID string    `gorm:"type:varchar(64);index" json:"request_id"`      // 请求ID
	Actor     string    `gorm:"type:varchar(128);index" json:"actor"`          // 操作人
	Action    string    `gorm:"type:varchar(64);not null;index" json:"action"` // 动作
	ShopID    string    `gorm:"type:varchar(64);index" json:"shop_id"`         // 店铺ID（平台操作为空）
	TargetID  string    `gorm:"type:varchar(64);index" json:"target_id"`       // 目标ID
	Detail    JSON      `gorm:"type:json" json:"detail"`                       // 详情
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (CatalogAuditLog) TableName() string {
	return "catalog_audit_logs"
}
