package public

import "github.com/biji-next/internal/provider"

// Handler 公开站点处理器：文章浏览与登录登出
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
