package jeweler

import (
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSettings 店铺生效设置
func (h *Handler) GetSettings(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	view, err := h.TenantService.GetSettingsView(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.settings_fetch_failed")
		return
	}
	response.Success(c, view)
}

// UpdateSettings 保存店铺设置
func (h *Handler) UpdateSettings(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	var req service.SettingsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	settings, err := h.TenantService.UpdateSettings(id, req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.settings_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditSettingsUpdate, id, id, map[string]interface{}{
		"price_markup_percent":  settings.PriceMarkupPercent.String(),
		"show_price_in_catalog": settings.ShowPriceInCatalog,
	})
	response.Success(c, settings)
}
