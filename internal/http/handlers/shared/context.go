package shared

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入上下文的键
const (
	ContextKeyCredentialID  = "credential_id"
	ContextKeyUsername      = "username"
	ContextKeyRole          = "role"
	ContextKeyJewelerShopID = "jeweler_shop_id"
	ContextKeyRequestID     = "request_id"
)

// GetContextString 读取字符串上下文值，缺失或类型不符时返回空串。
func GetContextString(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	value, ok := c.Get(key)
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

// RequestID 当前请求 ID。
func RequestID(c *gin.Context) string {
	return GetContextString(c, ContextKeyRequestID)
}

// Actor 当前操作人（用户名），未登录时为 anonymous。
func Actor(c *gin.Context) string {
	if username := GetContextString(c, ContextKeyUsername); username != "" {
		return username
	}
	return "anonymous"
}

// PathParam 读取并裁剪路径参数。
func PathParam(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}
