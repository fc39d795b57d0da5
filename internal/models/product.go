package models

// Product 平台商品表（超级管理员维护，所有店铺共享）
type Product struct {
	ID          string      `gorm:"primaryKey;type:varchar(64)" json:"id"`                                        // 主键
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`                                       // 名称
	Description string      `gorm:"type:text" json:"description"`                                                 // 描述
	Price       Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                           // 基础价格
	Category    string      `gorm:"type:varchar(64);index" json:"category"`                                       // 分类
	ImageURL    string      `gorm:"type:varchar(1024)" json:"image_url"`                                          // 主图
	ImageURLs   StringArray `gorm:"type:json" json:"image_urls"`                                                  // 图片列表（首图即主图）
	InStock     bool        `gorm:"not null" json:"in_stock"`                                                     // 是否有货
	MinOrder    int         `gorm:"not null;default:1" json:"min_order"`                                          // 起订量
	Position    int64       `gorm:"not null;default:0;index" json:"-"`                                            // 追加顺序
	CreatedAt   Date        `gorm:"type:varchar(10);index;autoCreateTime:false" json:"created_at"`                // 创建日期
	UpdatedAt   Date        `gorm:"type:varchar(10);autoCreateTime:false;autoUpdateTime:false" json:"updated_at"` // 更新日期
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
