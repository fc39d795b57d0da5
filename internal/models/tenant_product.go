package models

// TenantProduct 店铺自有商品表，仅在所属店铺内可见
type TenantProduct struct {
	ID            string      `gorm:"primaryKey;type:varchar(64)" json:"id"`                                        // 主键
	JewelerShopID string      `gorm:"type:varchar(64);not null;index" json:"jeweler_shop_id"`                       // 所属店铺（创建后不可变）
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`                                       // 名称
	Description   string      `gorm:"type:text" json:"description"`                                                 // 描述
	Price         Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                           // 基础价格
	Category      string      `gorm:"type:varchar(64);index" json:"category"`                                       // 分类
	ImageURL      string      `gorm:"type:varchar(1024)" json:"image_url"`                                          // 主图
	ImageURLs     StringArray `gorm:"type:json" json:"image_urls"`                                                  // 图片列表
	InStock       bool        `gorm:"not null" json:"in_stock"`                                                     // 是否有货
	MinOrder      int         `gorm:"not null;default:1" json:"min_order"`                                          // 起订量
	IsOwnProduct  bool        `gorm:"not null" json:"is_own_product"`                                               // 恒为 true
	Position      int64       `gorm:"not null;default:0;index" json:"-"`                                            // 店内追加顺序
	CreatedAt     Date        `gorm:"type:varchar(10);index;autoCreateTime:false" json:"created_at"`                // 创建日期
	UpdatedAt     Date        `gorm:"type:varchar(10);autoCreateTime:false;autoUpdateTime:false" json:"updated_at"` // 更新日期
}

// TableName 指定表名
func (TenantProduct) TableName() string {
	return "tenant_products"
}
