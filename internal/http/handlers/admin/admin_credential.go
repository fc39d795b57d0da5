package admin

import (
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/service"

	"github.com/gin-gonic/gin"
)

// GetJewelerCredentials 店铺管理员账号列表，可按 shop_id 过滤
func (h *Handler) GetJewelerCredentials(c *gin.Context) {
	credentials, err := h.AuthService.ListJewelerCredentials(c.Query("shop_id"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.credential_fetch_failed", err)
		return
	}
	response.Success(c, credentials)
}

// CreateJewelerCredential 创建店铺管理员账号
func (h *Handler) CreateJewelerCredential(c *gin.Context) {
	var req service.CredentialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	credential, err := h.AuthService.CreateJewelerCredential(req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.credential_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditCredentialCreate, credential.JewelerShopID, credential.ID, map[string]interface{}{
		"username": credential.Username,
	})
	response.Success(c, credential)
}

// UpdateJewelerCredential 修改店铺管理员账号或密码
func (h *Handler) UpdateJewelerCredential(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	var req service.CredentialInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	credential, err := h.AuthService.UpdateJewelerCredential(id, req)
	if err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.credential_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditCredentialUpdate, credential.JewelerShopID, credential.ID, map[string]interface{}{
		"username":         credential.Username,
		"password_changed": req.Password != "",
	})
	response.Success(c, credential)
}

// DeleteJewelerCredential 删除店铺管理员账号
func (h *Handler) DeleteJewelerCredential(c *gin.Context) {
	id, ok := requiredParam(c, "id")
	if !ok {
		return
	}
	if err := h.AuthService.DeleteJewelerCredential(id); err != nil {
		respondMappedError(c, err, response.CodeInternal, "error.credential_save_failed")
		return
	}
	h.recordMutation(c, constants.AuditCredentialDelete, "", id, nil)
	response.Success(c, nil)
}
