package public

import (
	"errors"

	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

var captchaErrorRules = []handlershared.ErrorRule{
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
}

var loginErrorRules = []handlershared.ErrorRule{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.login_invalid"},
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondMappedError(c *gin.Context, err error, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, handlershared.CommonErrorRules, fallbackCode, fallbackKey)
}

func respondCaptchaError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCaptchaConfigInvalid) {
		respondError(c, response.CodeInternal, "error.captcha_config_invalid", err)
		return
	}
	handlershared.RespondMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.captcha_verify_failed")
}
