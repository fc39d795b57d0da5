package jeweler

import (
	"github.com/jewelhub/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 店铺看板
func (h *Handler) GetDashboard(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	overview, err := h.DashboardService.TenantOverview(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.dashboard_fetch_failed")
		return
	}
	response.Success(c, overview)
}
