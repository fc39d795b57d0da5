package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jewelhub/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// CredentialAuthState 登录凭证鉴权快照
// 仅用于服务端 Redis 缓存，避免每次请求查询凭证表
type CredentialAuthState struct {
	CredentialID  string `json:"credential_id"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	JewelerShopID string `json:"jeweler_shop_id"`
	TokenVersion  uint64 `json:"token_version"`
	UpdatedAt     int64  `json:"updated_at"`
}

func credentialAuthStateKey(credentialID string) string {
	return fmt.Sprintf("auth:credential:%s", credentialID)
}

// BuildCredentialAuthState 从凭证模型构建鉴权快照
func BuildCredentialAuthState(credential *models.Credential) *CredentialAuthState {
	if credential == nil {
		return nil
	}
	return &CredentialAuthState{
		CredentialID:  credential.ID,
		Username:      credential.Username,
		Role:          credential.Role,
		JewelerShopID: credential.JewelerShopID,
		TokenVersion:  credential.TokenVersion,
		UpdatedAt:     time.Now().Unix(),
	}
}

// GetCredentialAuthState 获取凭证鉴权快照
func GetCredentialAuthState(ctx context.Context, credentialID string) (*CredentialAuthState, bool, error) {
	if strings.TrimSpace(credentialID) == "" {
		return nil, false, nil
	}
	var state CredentialAuthState
	hit, err := GetJSON(ctx, credentialAuthStateKey(credentialID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetCredentialAuthState 写入凭证鉴权快照
func SetCredentialAuthState(ctx context.Context, state *CredentialAuthState) error {
	if state == nil || state.CredentialID == "" {
		return nil
	}
	return SetJSON(ctx, credentialAuthStateKey(state.CredentialID), state, authStateCacheTTL)
}

// DelCredentialAuthState 删除凭证鉴权快照
func DelCredentialAuthState(ctx context.Context, credentialID string) error {
	if strings.TrimSpace(credentialID) == "" {
		return nil
	}
	return Del(ctx, credentialAuthStateKey(credentialID))
}
