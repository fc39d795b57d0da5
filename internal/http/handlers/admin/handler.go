package admin

import "github.com/jewelhub/internal/provider"

// Handler 平台管理端接口处理器入口
// 说明：该处理器仅用于超级管理员 API。
type Handler struct {
	*provider.Container
}

// New 创建平台管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
