package shared

import (
	"errors"

	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/i18n"
	"github.com/jewelhub/internal/logger"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if id := RequestID(c); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// ErrorRule 业务错误到接口错误响应的映射。
type ErrorRule struct {
	Target error
	Code   int
	Key    string
}

// CommonErrorRules 各端共用的映射
var CommonErrorRules = []ErrorRule{
	{Target: service.ErrTenantNotFound, Code: response.CodeNotFound, Key: "error.shop_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrCredentialNotFound, Code: response.CodeNotFound, Key: "error.credential_not_found"},
	{Target: service.ErrUsernameExists, Code: response.CodeBadRequest, Key: "error.credential_exists"},
	{Target: service.ErrInvalidPercentage, Code: response.CodeBadRequest, Key: "error.bulk_adjust_invalid"},
	{Target: service.ErrInvalidDirection, Code: response.CodeBadRequest, Key: "error.bulk_adjust_invalid"},
	{Target: service.ErrNotInitialized, Code: response.CodeServiceUnavailable, Key: "error.app_loading"},
	{Target: service.ErrLoadFailed, Code: response.CodeServiceUnavailable, Key: "error.app_load_failed"},
}

// RespondMappedError 按规则映射错误；校验类错误带出字段信息，未命中时使用兜底码。
func RespondMappedError(c *gin.Context, err error, rules []ErrorRule, fallbackCode int, fallbackKey string) {
	if RespondValidationError(c, err) {
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// RespondValidationError 处理字段校验与密码策略错误，已响应时返回 true。
func RespondValidationError(c *gin.Context, err error) bool {
	locale := i18n.ResolveLocale(c)
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		msg := i18n.Sprintf(locale, "error.validation_failed", validationErr.Error())
		response.Error(c, response.CodeBadRequest, msg)
		return true
	}
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if errors.As(err, &policyErr) {
		response.Error(c, response.CodeBadRequest, i18n.Sprintf(locale, policyErr.Key(), policyErr.Args()...))
		return true
	}
	return false
}
