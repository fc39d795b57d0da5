package constants

// 凭证角色
const (
	RoleSuperAdmin   = "super_admin"
	RoleJewelerAdmin = "jeweler_admin"
)

// 目录条目来源
const (
	OriginPlatform = "platform"
	OriginTenant   = "tenant"
)

// 批量调价方向
const (
	PriceDirectionIncrease = "increase"
	PriceDirectionDecrease = "decrease"
)

// 目录排序方式
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// CategoryAll 分类筛选的“全部”取值
const CategoryAll = "all"

// DefaultCategories 后台商品表单可选分类
var DefaultCategories = []string{"Rings", "Necklaces", "Bracelets", "Earrings", "Pendants"}

// 店铺设置默认值
const (
	DefaultHeroSubtitle = "Discover our exquisite collection of fine jewelry"
	DefaultPrimaryColor = "#1e3a5f"
	DefaultAccentColor  = "#c9a961"
)

// 主键前缀
const (
	TenantProductIDPrefix     = "jp-"
	JewelerCredentialIDPrefix = "jeweler-"
)

// 平台级写锁 key
const PlatformLockKey = "platform"

// 审计动作
const (
	AuditProductCreate       = "product.create"
	AuditProductUpdate       = "product.update"
	AuditProductDelete       = "product.delete"
	AuditProductBulkAdjust   = "product.bulk_adjust"
	AuditShopCreate          = "shop.create"
	AuditShopUpdate          = "shop.update"
	AuditShopDelete          = "shop.delete"
	AuditSettingsUpdate      = "shop.settings_update"
	AuditTenantProductCreate = "tenant_product.create"
	AuditTenantProductUpdate = "tenant_product.update"
	AuditTenantProductDelete = "tenant_product.delete"
	AuditVisibilityToggle    = "visibility.toggle"
	AuditCredentialCreate    = "credential.create"
	AuditCredentialUpdate    = "credential.update"
	AuditCredentialDelete    = "credential.delete"
	AuditAuthzRoleCreate     = "authz.role_create"
	AuditAuthzRoleDelete     = "authz.role_delete"
	AuditAuthzPolicyGrant    = "authz.policy_grant"
	AuditAuthzPolicyRevoke   = "authz.policy_revoke"
)

// 队列名称
const (
	QueueDefault = "default"
	QueueAudit   = "audit"
)

// 异步任务类型
const (
	TaskCatalogAudit = "catalog:audit"
)

// 验证码提供方与场景
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
	CaptchaSceneLogin    = "login"
)
