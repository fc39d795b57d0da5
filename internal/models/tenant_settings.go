package models

import "github.com/shopspring/decimal"

// TenantSettings 店铺品牌与定价设置
type TenantSettings struct {
	ShopID             string          `gorm:"primaryKey;type:varchar(64)" json:"shop_id"`                        // 店铺ID
	Logo               string          `gorm:"type:varchar(1024)" json:"logo"`                                    // Logo
	StoreName          string          `gorm:"type:varchar(255)" json:"store_name"`                               // 店铺展示名
	Tagline            string          `gorm:"type:varchar(255)" json:"tagline"`                                  // 标语
	Email              string          `gorm:"type:varchar(255)" json:"email"`                                    // 联系邮箱
	Phone              string          `gorm:"type:varchar(64)" json:"phone"`                                     // 联系电话
	Address            string          `gorm:"type:varchar(512)" json:"address"`                                  // 联系地址
	HeroTitle          string          `gorm:"type:varchar(255)" json:"hero_title"`                               // 首屏标题
	HeroSubtitle       string          `gorm:"type:varchar(512)" json:"hero_subtitle"`                            // 首屏副标题
	HeroBannerURL      string          `gorm:"type:varchar(1024)" json:"hero_banner_url"`                         // 首屏横幅
	PrimaryColor       string          `gorm:"type:varchar(16)" json:"primary_color"`                             // 主色
	AccentColor        string          `gorm:"type:varchar(16)" json:"accent_color"`                              // 强调色
	PriceMarkupPercent decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price_markup_percent"` // 加价百分比
	ShowPriceInCatalog bool            `gorm:"not null;default:false" json:"show_price_in_catalog"`               // 是否展示价格
}

// TableName 指定表名
func (TenantSettings) TableName() string {
	return "tenant_settings"
}
