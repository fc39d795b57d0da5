package admin

import (
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAuditLogs 目录变更审计日志
func (h *Handler) GetAuditLogs(c *gin.Context) {
	page, pageSize := parsePage(c)
	logs, total, err := h.AuditService.List(repository.AuditLogListFilter{
		Page:     page,
		PageSize: pageSize,
		Action:   c.Query("action"),
		ShopID:   c.Query("shop_id"),
		Actor:    c.Query("actor"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.audit_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, logs, buildPagination(page, pageSize, total))
}
