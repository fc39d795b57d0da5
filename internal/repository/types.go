package repository

// ProductListFilter 平台商品列表过滤条件
type ProductListFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// ShopListFilter 店铺列表过滤条件
type ShopListFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

// AuditLogListFilter 审计日志过滤条件
type AuditLogListFilter struct {
	Page     int
	PageSize int
	Action   string
	ShopID   string
	Actor    string
}
