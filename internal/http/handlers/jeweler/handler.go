package jeweler

import (
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/metrics"
	"github.com/jewelhub/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 店铺管理端接口处理器入口
// 所有路由挂在 /jeweler/:shop_id 下，店铺由路径参数确定。
type Handler struct {
	*provider.Container
}

// New 创建店铺管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func shopID(c *gin.Context) (string, bool) {
	id := handlershared.PathParam(c, "shop_id")
	if id == "" {
		handlershared.RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return "", false
	}
	return id, true
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondMappedError(c *gin.Context, err error, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, handlershared.CommonErrorRules, fallbackCode, fallbackKey)
}

func (h *Handler) recordMutation(c *gin.Context, action, shopID, targetID string, detail map[string]interface{}) {
	handlershared.RecordAudit(c, h.AuditService, action, shopID, targetID, detail)
	metrics.IncCatalogMutation(action)
}
