package admin

import (
	handlershared "github.com/jewelhub/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondMappedError(c *gin.Context, err error, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, handlershared.CommonErrorRules, fallbackCode, fallbackKey)
}
