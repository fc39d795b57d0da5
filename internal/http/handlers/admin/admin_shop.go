package admin

import (
	"strconv"

	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/repository"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminShops 获取店铺列表
func (h *Handler) GetAdminShops(c *gin.Context) {
	page, pageSize := parsePage(c)

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		isActive = &parsed
	}

	shops, total, err := h.TenantService.List(repository.ShopListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.shop_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, shops, buildPagination(page, pageSize, total))
}

// GetAdminShop 获取店铺详情
func (h *Handler) GetAdminShop(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	shop, err := h.TenantService.Get(id)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.shop_fetch_failed")
		return
	}
	response.Success(c, shop)
}

// CreateShop 创建店铺
func (h *Handler) CreateShop(c *gin.Context) {
	var req service.ShopInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shop, err := h.TenantService.Create(req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.shop_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditShopCreate, shop.ID, shop.ID, map[string]interface{}{
		"name":      shop.Name,
		"is_active": shop.IsActive,
	})
	response.Success(c, shop)
}

// UpdateShop 更新店铺资料
func (h *Handler) UpdateShop(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	var req service.ShopInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shop, err := h.TenantService.Update(id, req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.shop_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditShopUpdate, shop.ID, shop.ID, map[string]interface{}{
		"name":      shop.Name,
		"is_active": shop.IsActive,
	})
	response.Success(c, shop)
}

// DeleteShop 删除店铺及其全部数据
func (h *Handler) DeleteShop(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	if err := h.TenantService.Delete(id); err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.shop_delete_failed")
		return
	}
	h.recordMutation(c, constants.AuditShopDelete, id, id, nil)
	response.Success(c, nil)
}
