package router

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jewelhub/internal/authz"
	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/constants"
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/i18n"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/metrics"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = handlershared.ContextKeyRequestID
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-CSRF-Token",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// JWTAuthMiddleware JWT 鉴权中间件（后台与店铺后台共用）
func JWTAuthMiddleware(secretKey string, authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" {
			abortUnauthorized(c, "error.jwt_secret_missing")
			return
		}
		if authService == nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "error.auth_header_missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			abortUnauthorized(c, "error.auth_header_invalid")
			return
		}

		tokenString := parts[1]
		parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		claims := &service.JWTClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid || strings.TrimSpace(claims.CredentialID) == "" {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		state, err := authService.ResolveAuthState(claims)
		if err != nil {
			if errors.Is(err, service.ErrTokenRevoked) {
				abortUnauthorized(c, "error.token_revoked")
				return
			}
			logger.Warnw("jwt_auth_state_resolve_failed", "credential_id", claims.CredentialID, "error", err)
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		c.Set(handlershared.ContextKeyCredentialID, state.CredentialID)
		c.Set(handlershared.ContextKeyUsername, state.Username)
		c.Set(handlershared.ContextKeyRole, state.Role)
		c.Set(handlershared.ContextKeyJewelerShopID, state.JewelerShopID)
		c.Next()
	}
}

// AdminRBACMiddleware 基于 Casbin 的角色鉴权；enforce=false 时只要求已登录
func AdminRBACMiddleware(authzService *authz.Service, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		credentialID := handlershared.GetContextString(c, handlershared.ContextKeyCredentialID)
		role := handlershared.GetContextString(c, handlershared.ContextKeyRole)
		if credentialID == "" || role == "" {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}

		allowed, err := authzService.EnforceCredential(credentialID, role, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"credential_id", credentialID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"credential_id", credentialID,
				"role", role,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"resource", authz.NormalizeObject(resource),
			)
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

// TenantScopeMiddleware 店铺管理员只能访问自己的店铺；enforce=false 时放行
func TenantScopeMiddleware(enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}
		role := handlershared.GetContextString(c, handlershared.ContextKeyRole)
		if role == constants.RoleSuperAdmin {
			c.Next()
			return
		}
		boundShopID := handlershared.GetContextString(c, handlershared.ContextKeyJewelerShopID)
		shopID := strings.TrimSpace(c.Param("shop_id"))
		if role != constants.RoleJewelerAdmin || boundShopID == "" || boundShopID != shopID {
			logger.Warnw("tenant_scope_denied",
				"credential_id", handlershared.GetContextString(c, handlershared.ContextKeyCredentialID),
				"bound_shop_id", boundShopID,
				"shop_id", shopID,
			)
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireInitialized 初始数据未就绪时返回 503
func RequireInitialized(loader *service.LoaderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if loader == nil {
			c.Next()
			return
		}
		err := loader.Ready()
		if err == nil {
			c.Next()
			return
		}
		key := "error.app_loading"
		if errors.Is(err, service.ErrLoadFailed) {
			key = "error.app_load_failed"
		}
		response.Error(c, response.CodeServiceUnavailable, i18n.T(i18n.ResolveLocale(c), key))
		c.Abort()
	}
}

// MetricsMiddleware Prometheus 请求指标
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), key))
	c.Abort()
}

func abortForbidden(c *gin.Context) {
	response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
	c.Abort()
}
