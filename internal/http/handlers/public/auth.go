package public

import (
	"time"

	"github.com/jewelhub/internal/constants"
	handlershared "github.com/jewelhub/internal/http/handlers/shared"
	"github.com/jewelhub/internal/http/response"
	"github.com/jewelhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                              `json:"username" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token      string                 `json:"token"`
	Credential map[string]interface{} `json:"credential"`
	ExpiresAt  string                 `json:"expires_at"`
}

// Login 超级管理员与店铺管理员统一登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil && h.CaptchaService.Enabled(constants.CaptchaSceneLogin) {
		if err := h.CaptchaService.Verify(constants.CaptchaSceneLogin, req.CaptchaPayload.ToServicePayload()); err != nil {
			metrics.IncLoginAttempt("captcha_rejected")
			respondCaptchaError(c, err)
			return
		}
	}

	credential, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		metrics.IncLoginAttempt("failure")
		handlershared.RespondMappedError(c, err, loginErrorRules, response.CodeInternal, "error.login_failed")
		return
	}
	metrics.IncLoginAttempt("success")
	handlershared.RequestLog(c).Infow("credential_login",
		"credential_id", credential.ID,
		"role", credential.Role,
		"jeweler_shop_id", credential.JewelerShopID,
	)

	response.Success(c, LoginResponse{
		Token: token,
		Credential: map[string]interface{}{
			"id":              credential.ID,
			"username":        credential.Username,
			"role":            credential.Role,
			"jeweler_shop_id": credential.JewelerShopID,
		},
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
