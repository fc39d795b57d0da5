package admin

import (
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/repository"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BulkAdjustRequest 批量调价请求
type BulkAdjustRequest struct {
	Percentage decimal.Decimal `json:"percentage"`
	Direction  string          `json:"direction" binding:"required"`
}

// GetAdminProducts 获取平台商品列表
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := parsePage(c)
	products, total, err := h.CatalogService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, products, buildPagination(page, pageSize, total))
}

// GetAdminProduct 获取平台商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	product, err := h.CatalogService.Get(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// GetAdminCategories 后台商品表单可选分类
func (h *Handler) GetAdminCategories(c *gin.Context) {
	response.Success(c, constants.DefaultCategories)
}

// CreateProduct 创建平台商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.CatalogService.Create(req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditProductCreate, "", product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price.String(),
	})
	response.Success(c, product)
}

// UpdateProduct 更新平台商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	product, err := h.CatalogService.Update(id, req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditProductUpdate, "", product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price.String(),
	})
	response.Success(c, product)
}

// DeleteProduct 删除平台商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	if err := h.CatalogService.Delete(id); err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.product_delete_failed")
		return
	}
	h.recordMutation(c, constants.AuditProductDelete, "", id, nil)
	response.Success(c, nil)
}

// BulkAdjustPrices 按百分比批量调整平台商品价格
func (h *Handler) BulkAdjustPrices(c *gin.Context) {
	var req BulkAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	adjusted, err := h.CatalogService.BulkAdjustPrices(req.Percentage, req.Direction)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.bulk_adjust_failed")
		return
	}
	h.recordMutation(c, constants.AuditProductBulkAdjust, "", "", map[string]interface{}{
		"percentage": req.Percentage.String(),
		"direction":  req.Direction,
		"adjusted":   adjusted,
	})
	requestLog(c).Infow("admin_bulk_adjust",
		"operator", currentUsername(c),
		"percentage", req.Percentage.String(),
		"direction", req.Direction,
		"adjusted", adjusted,
	)
	response.Success(c, gin.H{"adjusted": adjusted})
}
