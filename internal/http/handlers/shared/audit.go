package shared

import (
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordAudit 以当前请求的 request_id 与操作人记录目录变更。
func RecordAudit(c *gin.Context, auditService *service.AuditService, action, shopID, targetID string, detail map[string]interface{}) {
	if auditService == nil {
		return
	}
	auditService.Record(c.Request.Context(), service.AuditEntry{
		RequestID: RequestID(c),
		Actor:     Actor(c),
		Action:    action,
		ShopID:    shopID,
		TargetID:  targetID,
		Detail:    detail,
	})
}
