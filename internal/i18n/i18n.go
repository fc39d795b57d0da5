package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleZH = "zh-CN"
	LocaleEN = "en-US"

	defaultLocale = LocaleEN
)

// ResolveLocale 从 Accept-Language 解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return defaultLocale
	}
	return NormalizeLocale(c.GetHeader("Accept-Language"))
}

// NormalizeLocale 归一化语言标识，未知语言回退为英文
func NormalizeLocale(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		switch {
		case tag == "":
			continue
		case strings.HasPrefix(tag, "zh"):
			return LocaleZH
		case strings.HasPrefix(tag, "en"):
			return LocaleEN
		}
	}
	return defaultLocale
}

// T 翻译消息 key，缺失时依次回退到英文与 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[defaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
