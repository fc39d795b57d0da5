package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"error.bad_request":              "Invalid request parameters",
		"error.validation_failed":        "Validation failed: %s",
		"error.unauthorized":             "Unauthorized",
		"error.forbidden":                "Permission denied",
		"error.jwt_secret_missing":       "Authentication is not configured",
		"error.auth_header_missing":      "Missing Authorization header",
		"error.auth_header_invalid":      "Invalid Authorization header",
		"error.token_invalid":            "Invalid or expired token",
		"error.token_revoked":            "Token has been revoked",
		"error.login_invalid":            "Invalid username or password",
		"error.login_failed":             "Login failed",
		"error.login_too_many":           "Too many login attempts, retry in %d seconds",
		"error.rate_limited":             "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":   "Rate limiter unavailable",
		"error.captcha_required":         "Captcha is required",
		"error.captcha_invalid":          "Captcha is invalid",
		"error.captcha_config_invalid":   "Captcha is not configured",
		"error.captcha_verify_failed":    "Captcha verification failed",
		"error.captcha_generate_failed":  "Failed to generate captcha",
		"error.app_loading":              "Catalog is still loading",
		"error.app_load_failed":          "Catalog failed to load",
		"error.shop_not_found":           "Store not found",
		"error.shop_fetch_failed":        "Failed to fetch stores",
		"error.shop_save_failed":         "Failed to save store",
		"error.shop_delete_failed":       "Failed to delete store",
		"error.settings_fetch_failed":    "Failed to fetch store settings",
		"error.settings_save_failed":     "Failed to save store settings",
		"error.product_not_found":        "Product not found",
		"error.product_fetch_failed":     "Failed to fetch products",
		"error.product_save_failed":      "Failed to save product",
		"error.product_delete_failed":    "Failed to delete product",
		"error.bulk_adjust_invalid":      "Invalid bulk adjustment",
		"error.bulk_adjust_failed":       "Failed to adjust prices",
		"error.visibility_toggle_failed": "Failed to toggle visibility",
		"error.catalog_resolve_failed":   "Failed to resolve catalog",
		"error.dashboard_fetch_failed":   "Failed to fetch dashboard",
		"error.credential_not_found":     "Account not found",
		"error.credential_exists":        "Username already exists",
		"error.credential_save_failed":   "Failed to save account",
		"error.credential_fetch_failed":  "Failed to fetch accounts",
		"error.password_weak":            "Password does not meet the policy",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.audit_fetch_failed":       "Failed to fetch audit logs",
		"error.authz_fetch_failed":       "Failed to fetch permissions",
		"error.authz_save_failed":        "Failed to save permissions",
		"error.role_immutable":           "Builtin roles cannot be deleted",
	},
	LocaleZH: {
		"error.bad_request":              "请求参数错误",
		"error.validation_failed":        "校验失败：%s",
		"error.unauthorized":             "未登录或登录已失效",
		"error.forbidden":                "无权限访问",
		"error.jwt_secret_missing":       "鉴权未配置",
		"error.auth_header_missing":      "缺少 Authorization 请求头",
		"error.auth_header_invalid":      "Authorization 请求头格式错误",
		"error.token_invalid":            "Token 无效或已过期",
		"error.token_revoked":            "Token 已失效",
		"error.login_invalid":            "用户名或密码错误",
		"error.login_failed":             "登录失败",
		"error.login_too_many":           "登录尝试过多，请 %d 秒后重试",
		"error.rate_limited":             "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":   "限流服务不可用",
		"error.captcha_required":         "请输入验证码",
		"error.captcha_invalid":          "验证码错误",
		"error.captcha_config_invalid":   "验证码未配置",
		"error.captcha_verify_failed":    "验证码校验失败",
		"error.captcha_generate_failed":  "生成验证码失败",
		"error.app_loading":              "目录数据加载中",
		"error.app_load_failed":          "目录数据加载失败",
		"error.shop_not_found":           "店铺不存在",
		"error.shop_fetch_failed":        "获取店铺失败",
		"error.shop_save_failed":         "保存店铺失败",
		"error.shop_delete_failed":       "删除店铺失败",
		"error.settings_fetch_failed":    "获取店铺设置失败",
		"error.settings_save_failed":     "保存店铺设置失败",
		"error.product_not_found":        "商品不存在",
		"error.product_fetch_failed":     "获取商品失败",
		"error.product_save_failed":      "保存商品失败",
		"error.product_delete_failed":    "删除商品失败",
		"error.bulk_adjust_invalid":      "批量调价参数错误",
		"error.bulk_adjust_failed":       "批量调价失败",
		"error.visibility_toggle_failed": "切换可见性失败",
		"error.catalog_resolve_failed":   "生成店铺目录失败",
		"error.dashboard_fetch_failed":   "获取看板数据失败",
		"error.credential_not_found":     "账号不存在",
		"error.credential_exists":        "用户名已存在",
		"error.credential_save_failed":   "保存账号失败",
		"error.credential_fetch_failed":  "获取账号失败",
		"error.password_weak":            "密码不符合安全策略",
		"error.password_min_length":      "密码长度至少为 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.audit_fetch_failed":       "获取审计日志失败",
		"error.authz_fetch_failed":       "获取权限配置失败",
		"error.authz_save_failed":        "保存权限配置失败",
		"error.role_immutable":           "预置角色不可删除",
	},
}
