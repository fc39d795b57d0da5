package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	MessageKey    string
	// OnLimited 命中限流时回调（用于指标）
	OnLimited func(key string)
}

// 固定窗口计数：首次写入时设置过期
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件，未配置 Redis 时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		count, ttlSeconds, err := runRateLimit(c, client, key, rule.WindowSeconds)
		if err != nil {
			handlershared.RequestLog(c).Warnw("rate_limit_unavailable", "key", key, "error", err)
			response.Error(c, response.CodeServiceUnavailable, i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable"))
			c.Abort()
			return
		}
		if count <= int64(rule.MaxRequests) {
			c.Next()
			return
		}

		waitSeconds := int(ttlSeconds)
		if waitSeconds < 1 {
			waitSeconds = rule.WindowSeconds
		}
		msgKey := strings.TrimSpace(rule.MessageKey)
		if msgKey == "" {
			msgKey = "error.rate_limited"
		}
		if rule.OnLimited != nil {
			rule.OnLimited(key)
		}
		handlershared.RequestLog(c).Warnw("rate_limited", "key", key, "count", count, "retry_after", waitSeconds)
		response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds))
		c.Abort()
	}
}

func runRateLimit(c *gin.Context, client *redis.Client, key string, windowSeconds int) (int64, int64, error) {
	result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, windowSeconds).Result()
	if err != nil {
		return 0, 0, err
	}
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit result %T", result)
	}
	count, ok := toInt64(values[0])
	if !ok {
		return 0, 0, fmt.Errorf("unexpected rate limit counter %T", values[0])
	}
	ttl, _ := toInt64(values[1])
	return count, ttl, nil
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 JSON 字段 + IP 作为限流 key，读取后恢复请求体
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(readJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if text, ok := payload[field].(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
