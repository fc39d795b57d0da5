package public

import (
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/metrics"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAppState 初始加载状态
func (h *Handler) GetAppState(c *gin.Context) {
	response.Success(c, h.LoaderService.State())
}

// GetCategories 平台目录中出现的分类
func (h *Handler) GetCategories(c *gin.Context) {
	products, err := h.StorefrontService.PublicProducts()
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, service.CatalogCategories(products))
}

// GetPublicProducts 平台目录（不展示价格），支持 search/category/sort
func (h *Handler) GetPublicProducts(c *gin.Context) {
	var query service.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	products, err := h.StorefrontService.PublicProducts()
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, service.ApplyCatalogQuery(products, query))
}

// GetPublicShop 店铺前台资料
func (h *Handler) GetPublicShop(c *gin.Context) {
	shopID := handlershared.PathParam(c, "shop_id")
	view, err := h.StorefrontService.Storefront(shopID)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.shop_fetch_failed")
		return
	}
	response.Success(c, view)
}

// GetShopCatalog 店铺前台目录，价格按店铺设置加价或隐藏
func (h *Handler) GetShopCatalog(c *gin.Context) {
	shopID := handlershared.PathParam(c, "shop_id")
	var query service.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	items, err := h.StorefrontService.ResolveCatalog(shopID)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.catalog_resolve_failed")
		return
	}
	metrics.IncCatalogResolve(shopID)
	response.Success(c, gin.H{
		"items":      service.ApplyCatalogQuery(items, query),
		"categories": service.CatalogCategories(items),
		"total":      len(items),
	})
}
