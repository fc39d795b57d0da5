package admin

import (
	"strconv"

	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

func currentUsername(c *gin.Context) string {
	return handlershared.Actor(c)
}

func currentCredentialID(c *gin.Context) string {
	return handlershared.GetContextString(c, handlershared.ContextKeyCredentialID)
}

func currentRole(c *gin.Context) string {
	return handlershared.GetContextString(c, handlershared.ContextKeyRole)
}

func requiredParam(c *gin.Context, name string) (string, bool) {
	value := handlershared.PathParam(c, name)
	if value == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return "", false
	}
	return value, true
}

func parsePage(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return handlershared.NormalizePagination(page, pageSize)
}

func buildPagination(page, pageSize int, total int64) response.Pagination {
	return response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
}

// recordMutation 写审计并累计变更指标
func (h *Handler) recordMutation(c *gin.Context, action, shopID, targetID string, detail map[string]interface{}) {
	handlershared.RecordAudit(c, h.AuditService, action, shopID, targetID, detail)
	metrics.IncCatalogMutation(action)
}
