package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jewelhub/internal/cache"
	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/constants"
	"github.com/jewelhub/internal/models"
	"github.com/jewelhub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 登录凭证与认证服务
type AuthService struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
	shopRepo       repository.ShopRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, credentialRepo repository.CredentialRepository, shopRepo repository.ShopRepository) *AuthService {
	return &AuthService{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		shopRepo:       shopRepo,
	}
}

// CredentialInput 店铺管理员凭证参数
type CredentialInput struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	JewelerShopID string `json:"jeweler_shop_id"`
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword 校验密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims JWT 声明
type JWTClaims struct {
	CredentialID  string `json:"credential_id"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	JewelerShopID string `json:"jeweler_shop_id,omitempty"`
	TokenVersion  uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(credential *models.Credential) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := JWTClaims{
		CredentialID:  credential.ID,
		Username:      credential.Username,
		Role:          credential.Role,
		JewelerShopID: credential.JewelerShopID,
		TokenVersion:  credential.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   credential.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// Login 凭证登录
func (s *AuthService) Login(username, password string) (*models.Credential, string, time.Time, error) {
	credential, err := s.credentialRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if credential == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(credential.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(credential)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	credential.LastLoginAt = &now
	if err := s.credentialRepo.Update(credential); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetCredentialAuthState(context.Background(), cache.BuildCredentialAuthState(credential))
	return credential, token, expiresAt, nil
}

// ResolveAuthState 校验 Token 对应凭证仍然有效（优先读缓存）
func (s *AuthService) ResolveAuthState(claims *JWTClaims) (*cache.CredentialAuthState, error) {
	if claims == nil || strings.TrimSpace(claims.CredentialID) == "" {
		return nil, ErrTokenRevoked
	}
	ctx := context.Background()
	state, hit, err := cache.GetCredentialAuthState(ctx, claims.CredentialID)
	if err != nil || !hit {
		credential, err := s.credentialRepo.GetByID(claims.CredentialID)
		if err != nil {
			return nil, err
		}
		if credential == nil {
			return nil, ErrTokenRevoked
		}
		state = cache.BuildCredentialAuthState(credential)
		_ = cache.SetCredentialAuthState(ctx, state)
	}
	if state.TokenVersion != claims.TokenVersion || state.Role != claims.Role || state.JewelerShopID != claims.JewelerShopID {
		return nil, ErrTokenRevoked
	}
	return state, nil
}

// ListJewelerCredentials 列出店铺管理员凭证，shopID 为空时返回全部
func (s *AuthService) ListJewelerCredentials(shopID string) ([]models.Credential, error) {
	credentials, err := s.credentialRepo.List(constants.RoleJewelerAdmin)
	if err != nil {
		return nil, err
	}
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return credentials, nil
	}
	filtered := make([]models.Credential, 0, len(credentials))
	for _, credential := range credentials {
		if credential.JewelerShopID == shopID {
			filtered = append(filtered, credential)
		}
	}
	return filtered, nil
}

// CreateJewelerCredential 为店铺创建管理员凭证
func (s *AuthService) CreateJewelerCredential(input CredentialInput) (*models.Credential, error) {
	username := strings.TrimSpace(input.Username)
	shopID := strings.TrimSpace(input.JewelerShopID)
	if username == "" {
		return nil, newValidationError("username", "required")
	}
	if shopID == "" {
		return nil, newValidationError("jeweler_shop_id", "required")
	}
	if err := s.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	shop, err := s.shopRepo.GetByID(shopID, false)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, ErrTenantNotFound
	}
	if err := s.ensureUsernameAvailable(username, ""); err != nil {
		return nil, err
	}
	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	credential := &models.Credential{
		ID:            constants.JewelerCredentialIDPrefix + uuid.NewString(),
		Username:      username,
		PasswordHash:  hash,
		Role:          constants.RoleJewelerAdmin,
		JewelerShopID: shopID,
	}
	if err := s.credentialRepo.Create(credential); err != nil {
		return nil, err
	}
	return credential, nil
}

// UpdateJewelerCredential 修改店铺管理员账号或密码，改密后旧 Token 失效
func (s *AuthService) UpdateJewelerCredential(id string, input CredentialInput) (*models.Credential, error) {
	credential, err := s.getJewelerCredential(id)
	if err != nil {
		return nil, err
	}
	if username := strings.TrimSpace(input.Username); username != "" && username != credential.Username {
		if err := s.ensureUsernameAvailable(username, credential.ID); err != nil {
			return nil, err
		}
		credential.Username = username
	}
	if input.Password != "" {
		if err := s.ValidatePassword(input.Password); err != nil {
			return nil, err
		}
		hash, err := s.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		credential.PasswordHash = hash
		credential.TokenVersion++
	}
	if err := s.credentialRepo.Update(credential); err != nil {
		return nil, err
	}
	_ = cache.DelCredentialAuthState(context.Background(), credential.ID)
	return credential, nil
}

// DeleteJewelerCredential 删除店铺管理员凭证
func (s *AuthService) DeleteJewelerCredential(id string) error {
	credential, err := s.getJewelerCredential(id)
	if err != nil {
		return err
	}
	if _, err := s.credentialRepo.Delete(credential.ID); err != nil {
		return err
	}
	_ = cache.DelCredentialAuthState(context.Background(), credential.ID)
	return nil
}

func (s *AuthService) getJewelerCredential(id string) (*models.Credential, error) {
	credential, err := s.credentialRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if credential == nil || credential.Role != constants.RoleJewelerAdmin {
		return nil, ErrCredentialNotFound
	}
	return credential, nil
}

func (s *AuthService) ensureUsernameAvailable(username, excludeID string) error {
	count, err := s.credentialRepo.CountByUsername(username, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameExists
	}
	return nil
}
