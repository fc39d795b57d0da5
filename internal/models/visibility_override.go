package models

import "time"

// VisibilityOverride 平台商品在店铺内的可见性例外记录
// 无记录即默认可见；记录只翻转，不删除
type VisibilityOverride struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                                                           // 主键
	ProductID     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_visibility_product_shop" json:"product_id"`            // 平台商品ID
	JewelerShopID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_visibility_product_shop;index" json:"jeweler_shop_id"` // 店铺ID
	IsVisible     bool      `gorm:"not null" json:"is_visible"`                                                                     // 是否可见
	UpdatedAt     time.Time `json:"updated_at"`                                                                                     // 更新时间
}

// TableName 指定表名
func (VisibilityOverride) TableName() string {
	return "visibility_overrides"
}
