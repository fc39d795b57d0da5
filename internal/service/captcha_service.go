package service

import (
	"strings"
	"sync"
	"time"

	"github.com/jewelhub/internal/config"
	"github.com/jewelhub/internal/constants"

	"github.com/mojocn/base64Captcha"
)

const captchaCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CaptchaVerifyPayload 验证码校验请求载荷
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 图片验证码服务
// 按场景开关决定是否需要验证码，外部仅调用 Verify 与 GenerateImageChallenge
type CaptchaService struct {
	cfg config.CaptchaConfig

	once       sync.Once
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: normalizeCaptchaConfig(cfg)}
}

// Enabled 判断场景是否需要验证码
func (s *CaptchaService) Enabled(scene string) bool {
	if s == nil || s.cfg.Provider != constants.CaptchaProviderImage {
		return false
	}
	switch scene {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	default:
		return false
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || s.cfg.Provider != constants.CaptchaProviderImage {
		return nil, ErrCaptchaConfigInvalid
	}
	image := s.cfg.Image
	driver := base64Captcha.NewDriverString(
		image.Height,
		image.Width,
		image.NoiseCount,
		image.ShowLine,
		image.Length,
		captchaCharset,
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.store())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 按场景校验验证码
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.Enabled(scene) {
		return nil
	}
	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.store().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) store() base64Captcha.Store {
	s.once.Do(func() {
		s.imageStore = base64Captcha.NewMemoryStore(s.cfg.Image.MaxStore, time.Duration(s.cfg.Image.ExpireSeconds)*time.Second)
	})
	return s.imageStore
}

func normalizeCaptchaConfig(cfg config.CaptchaConfig) config.CaptchaConfig {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider != constants.CaptchaProviderImage {
		cfg.Provider = constants.CaptchaProviderNone
	}
	if cfg.Image.Length < 4 || cfg.Image.Length > 8 {
		cfg.Image.Length = 5
	}
	if cfg.Image.Width < 80 {
		cfg.Image.Width = 240
	}
	if cfg.Image.Height < 30 {
		cfg.Image.Height = 80
	}
	if cfg.Image.NoiseCount < 0 {
		cfg.Image.NoiseCount = 0
	}
	if cfg.Image.ShowLine < 0 {
		cfg.Image.ShowLine = 0
	}
	if cfg.Image.ExpireSeconds <= 0 {
		cfg.Image.ExpireSeconds = 300
	}
	if cfg.Image.MaxStore <= 0 {
		cfg.Image.MaxStore = 10240
	}
	return cfg
}
