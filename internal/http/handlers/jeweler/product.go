package jeweler

import (
	"github.com/jewelhub/internal/constants"
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetOwnProducts 店铺自有商品列表
func (h *Handler) GetOwnProducts(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	products, err := h.TenantCatalogService.List(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, products)
}

// GetOwnProduct 店铺自有商品详情
func (h *Handler) GetOwnProduct(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	product, err := h.TenantCatalogService.Get(id, handlershared.PathParam(c, "id"))
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// CreateOwnProduct 新建店铺自有商品
func (h *Handler) CreateOwnProduct(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.TenantCatalogService.Create(id, req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditTenantProductCreate, id, product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price.String(),
	})
	response.Success(c, product)
}

// UpdateOwnProduct 更新店铺自有商品
func (h *Handler) UpdateOwnProduct(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.TenantCatalogService.Update(id, handlershared.PathParam(c, "id"), req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditTenantProductUpdate, id, product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price.String(),
	})
	response.Success(c, product)
}

// DeleteOwnProduct 删除店铺自有商品
func (h *Handler) DeleteOwnProduct(c *gin.Context) {
	id, ok := shopID(c)
	if !ok {
		return
	}
	productID := handlershared.PathParam(c, "id")
	if err := h.TenantCatalogService.Delete(id, productID); err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_delete_failed")
		return
	}
	h.recordMutation(c, constants.AuditTenantProductDelete, id, productID, nil)
	response.Success(c, nil)
}
