package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jewelhub/internal/authz"
	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/config"
	adminhandlers "github.com/jewelhub/internal/http/handlers/admin"
	jewelerhandlers "github.com/jewelhub/internal/http/handlers/jeweler"
	publichandlers "github.com/jewelhub/internal/http/handlers/public"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/metrics"
	"github.com/jewelhub/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/平台后台/店铺后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	jewelerHandler := jewelerhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "jh"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
		OnLimited: func(string) {
			metrics.IncLoginAttempt("rate_limited")
		},
	}

	enforce := cfg.Security.EnforceAdminAuthz
	if !enforce {
		log.Sugar().Warnw("admin_authz_not_enforced",
			"detail", "admin and jeweler routes only require a valid token; set security.enforce_admin_authz=true to enable role and tenant scope checks",
		)
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		metrics.Init(cfg.Metrics)
		r.Use(MetricsMiddleware())
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(metrics.Handler()))
	}

	ready := RequireInitialized(c.LoaderService)
	authenticated := JWTAuthMiddleware(cfg.JWT.SecretKey, c.AuthService)
	rbac := AdminRBACMiddleware(c.AuthzService, enforce)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/app-state", publicHandler.GetAppState)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)

			catalog := public.Group("", ready)
			catalog.GET("/categories", publicHandler.GetCategories)
			catalog.GET("/products", publicHandler.GetPublicProducts)
			catalog.GET("/shops/:shop_id", publicHandler.GetPublicShop)
			catalog.GET("/shops/:shop_id/catalog", publicHandler.GetShopCatalog)
		}

		// 登录接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("username")), ready, publicHandler.Login)
		}

		// 平台管理接口
		admin := apiV1.Group("/admin", authenticated, rbac, ready)
		{
			// 仪表盘
			admin.GET("/dashboard/overview", adminHandler.GetDashboardOverview)

			// 平台商品
			admin.GET("/categories", adminHandler.GetAdminCategories)
			admin.GET("/products", adminHandler.GetAdminProducts)
			admin.GET("/products/:id", adminHandler.GetAdminProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.POST("/products/bulk-adjust", adminHandler.BulkAdjustPrices)

			// 店铺
			admin.GET("/shops", adminHandler.GetAdminShops)
			admin.GET("/shops/:id", adminHandler.GetAdminShop)
			admin.POST("/shops", adminHandler.CreateShop)
			admin.PUT("/shops/:id", adminHandler.UpdateShop)
			admin.DELETE("/shops/:id", adminHandler.DeleteShop)

			// 店铺管理员账号
			admin.GET("/credentials", adminHandler.GetJewelerCredentials)
			admin.POST("/credentials", adminHandler.CreateJewelerCredential)
			admin.PUT("/credentials/:id", adminHandler.UpdateJewelerCredential)
			admin.DELETE("/credentials/:id", adminHandler.DeleteJewelerCredential)

			// 审计日志
			admin.GET("/audit-logs", adminHandler.GetAuditLogs)

			// 权限管理
			admin.GET("/authz/me", adminHandler.GetAuthzMe)
			admin.GET("/authz/roles", adminHandler.ListAuthzRoles)
			admin.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
				response.Success(ctx, buildPermissionCatalog(r))
			})
			admin.POST("/authz/roles", adminHandler.CreateAuthzRole)
			admin.DELETE("/authz/roles/:role", adminHandler.DeleteAuthzRole)
			admin.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			admin.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			admin.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
		}

		// 店铺管理接口
		jeweler := apiV1.Group("/jeweler/:shop_id", authenticated, rbac, TenantScopeMiddleware(enforce), ready)
		{
			jeweler.GET("/dashboard", jewelerHandler.GetDashboard)
			jeweler.GET("/catalog", jewelerHandler.GetManagedCatalog)
			jeweler.GET("/catalog/preview", jewelerHandler.GetCatalogPreview)

			jeweler.GET("/products", jewelerHandler.GetOwnProducts)
			jeweler.GET("/products/:id", jewelerHandler.GetOwnProduct)
			jeweler.POST("/products", jewelerHandler.CreateOwnProduct)
			jeweler.PUT("/products/:id", jewelerHandler.UpdateOwnProduct)
			jeweler.DELETE("/products/:id", jewelerHandler.DeleteOwnProduct)
			jeweler.POST("/products/:id/visibility/toggle", jewelerHandler.ToggleVisibility)

			jeweler.GET("/settings", jewelerHandler.GetSettings)
			jeweler.PUT("/settings", jewelerHandler.UpdateSettings)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

type permissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildPermissionCatalog 从已注册路由生成可授权的权限清单
func buildPermissionCatalog(engine *gin.Engine) []permissionCatalogItem {
	if engine == nil {
		return []permissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]permissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") && !strings.HasPrefix(item.Path, "/api/v1/jeweler/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, permissionCatalogItem{
			Module:     derivePermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

// derivePermissionModule /admin/products/:id -> admin.products，/jeweler/:shop_id/settings -> jeweler.settings
func derivePermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	rest := segments[1:]
	if segments[0] == "jeweler" && len(rest) > 1 {
		rest = rest[1:]
	}
	return segments[0] + "." + rest[0]
}
