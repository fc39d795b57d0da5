package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("not found")
	// ErrTenantNotFound 店铺不存在
	ErrTenantNotFound = fmt.Errorf("jeweler shop %w", ErrNotFound)
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrCredentialNotFound 凭证不存在
	ErrCredentialNotFound = fmt.Errorf("credential %w", ErrNotFound)

	// ErrValidation 输入校验失败
	ErrValidation = errors.New("validation failed")
	// ErrInvalidPercentage 调价百分比非法
	ErrInvalidPercentage = errors.New("invalid adjustment percentage")
	// ErrInvalidDirection 调价方向非法
	ErrInvalidDirection = errors.New("invalid adjustment direction")

	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameExists 用户名已被占用
	ErrUsernameExists = errors.New("username already exists")
	// ErrWeakPassword 密码不符合策略
	ErrWeakPassword = errors.New("password does not satisfy policy")
	// ErrTokenRevoked Token 已失效
	ErrTokenRevoked = errors.New("token revoked")

	// ErrNotInitialized 初始数据尚未加载完成
	ErrNotInitialized = errors.New("catalog not initialized")
	// ErrLoadFailed 初始数据加载失败
	ErrLoadFailed = errors.New("catalog load failed")

	// ErrCaptchaRequired 缺少验证码
	ErrCaptchaRequired = errors.New("captcha required")
	// ErrCaptchaInvalid 验证码错误
	ErrCaptchaInvalid = errors.New("captcha invalid")
	// ErrCaptchaConfigInvalid 验证码配置错误
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
)

// ValidationError 字段级校验错误
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is 使 errors.Is(err, ErrValidation) 成立
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
