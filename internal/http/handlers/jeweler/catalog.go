package jeweler

import (
	"github.com/jewelhub/internal/constants"
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetManagedCatalog 店铺后台目录：全部平台商品附可见性，加自有商品，原始价格
func (h *Handler) GetManagedCatalog(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	var query service.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items, err := h.StorefrontService.ManagedCatalog(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.catalog_resolve_failed")
		return
	}
	response.Success(c, service.ApplyCatalogQuery(items, query))
}

// GetCatalogPreview 以访客视角预览店铺目录
func (h *Handler) GetCatalogPreview(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	var query service.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items, err := h.StorefrontService.ResolveCatalog(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.catalog_resolve_failed")
		return
	}
	response.Success(c, service.ApplyCatalogQuery(items, query))
}

// ToggleVisibility 翻转平台商品在本店的可见性
func (h *Handler) ToggleVisibility(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	productID := handlershared.PathParam(c, "id")
	if productID == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	visible, err := h.VisibilityService.Toggle(productID, id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.visibility_toggle_failed")
		return
	}
	h.recordMutation(c, constants.AuditVisibilityToggle, id, productID, map[string]interface{}{
		"is_visible": visible,
	})
	response.Success(c, gin.H{
		"product_id": productID,
		"is_visible": visible,
	})
}
