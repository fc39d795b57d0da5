package models

// JewelerShop 珠宝商店铺（租户）表
type JewelerShop struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`                    // 主键
	Name        string `gorm:"type:varchar(255);not null" json:"name"`                   // 店铺名
	OwnerName   string `gorm:"type:varchar(255);not null" json:"owner_name"`             // 店主
	Email       string `gorm:"type:varchar(255)" json:"email"`                           // 邮箱
	Phone       string `gorm:"type:varchar(64)" json:"phone"`                            // 电话
	Address     string `gorm:"type:varchar(255)" json:"address"`                         // 地址
	City        string `gorm:"type:varchar(128)" json:"city"`                            // 城市
	State       string `gorm:"type:varchar(64)" json:"state"`                            // 州/省
	IsActive    bool   `gorm:"not null;index" json:"is_active"`                          // 是否启用（仅影响统计）
	JoinedDate  Date   `gorm:"type:varchar(10);autoCreateTime:false" json:"joined_date"` // 入驻日期
	TotalOrders int64  `gorm:"not null;default:0" json:"total_orders"`                   // 订单数（静态展示）

	Settings *TenantSettings `gorm:"foreignKey:ShopID;references:ID" json:"settings,omitempty"` // 店铺设置
}

// TableName 指定表名
func (JewelerShop) TableName() string {
	return "jeweler_shops"
}
