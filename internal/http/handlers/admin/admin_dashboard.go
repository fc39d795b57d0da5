package admin

import (
	"github.com/jewelhub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 获取平台看板
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.DashboardService.Overview()
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.dashboard_fetch_failed")
		return
	}
	response.Success(c, overview)
}
