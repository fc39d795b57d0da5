package models

import "time"

// DashboardCounterID 计数器单行主键
const DashboardCounterID uint = 1

// DashboardCounter 看板显式计数器
// total_shops/active_shops 由店铺增删改时按 is_active 变化维护，revenue 为种子常量
type DashboardCounter struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	TotalShops  int64     `gorm:"not null;default:0" json:"total_shops"`
	ActiveShops int64     `gorm:"not null;default:0" json:"active_shops"`
	Revenue     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"revenue"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (DashboardCounter) TableName() string {
	return "dashboard_counters"
}
