package admin

import (
	"errors"
	"net/url"
	"strings"

	"github.com/jewelhub/internal/authz"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/logger"

	"github.com/gin-gonic/gin"
)

type authzRolePayload struct {
	Role string `json:"role" binding:"required"`
}

type authzPolicyPayload struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GetAuthzMe 当前账号的权限快照
func (h *Handler) GetAuthzMe(c *gin.Context) {
	role := currentRole(c)
	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, response.CodeInternal, "error.authz_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"credential_id": currentCredentialID(c),
		"username":      currentUsername(c),
		"role":          role,
		"policies":      policies,
	})
}

// ListAuthzRoles 获取角色列表
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.authz_fetch_failed", err)
		return
	}
	response.Success(c, roles)
}

// CreateAuthzRole 创建角色
func (h *Handler) CreateAuthzRole(c *gin.Context) {
	var req authzRolePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	h.recordMutation(c, constants.AuditAuthzRoleCreate, "", role, map[string]interface{}{"role": role})
	logger.Infow("admin_authz_role_created",
		"operator", currentUsername(c),
		"role", role,
	)
	response.Success(c, gin.H{"role": role})
}

// DeleteAuthzRole 删除角色
func (h *Handler) DeleteAuthzRole(c *gin.Context) {
	role := decodeRoleParam(c.Param("role"))
	if strings.TrimSpace(role) == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.AuthzService.DeleteRole(role); err != nil {
		if errors.Is(err, authz.ErrRoleImmutable) {
			respondError(c, response.CodeBadRequest, "error.role_immutable", nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	h.recordMutation(c, constants.AuditAuthzRoleDelete, "", role, map[string]interface{}{"role": role})
	logger.Infow("admin_authz_role_deleted",
		"operator", currentUsername(c),
		"role", role,
	)
	response.Success(c, nil)
}

// GetAuthzRolePolicies 获取角色策略
func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	role := decodeRoleParam(c.Param("role"))
	if strings.TrimSpace(role) == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	response.Success(c, policies)
}

// GrantAuthzPolicy 授予角色策略
func (h *Handler) GrantAuthzPolicy(c *gin.Context) {
	var req authzPolicyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthzService.GrantRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.authz_save_failed", err)
		return
	}

	h.recordMutation(c, constants.AuditAuthzPolicyGrant, "", req.Role, policyDetail(req))
	logger.Infow("admin_authz_policy_granted",
		"operator", currentUsername(c),
		"role", req.Role,
		"object", req.Object,
		"action", req.Action,
	)
	response.Success(c, nil)
}

// RevokeAuthzPolicy 撤销角色策略
func (h *Handler) RevokeAuthzPolicy(c *gin.Context) {
	var req authzPolicyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthzService.RevokeRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.authz_save_failed", err)
		return
	}

	h.recordMutation(c, constants.AuditAuthzPolicyRevoke, "", req.Role, policyDetail(req))
	logger.Infow("admin_authz_policy_revoked",
		"operator", currentUsername(c),
		"role", req.Role,
		"object", req.Object,
		"action", req.Action,
	)
	response.Success(c, nil)
}

func policyDetail(req authzPolicyPayload) map[string]interface{} {
	return map[string]interface{}{
		"role":   req.Role,
		"object": req.Object,
		"method": strings.ToUpper(strings.TrimSpace(req.Action)),
	}
}

func decodeRoleParam(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
