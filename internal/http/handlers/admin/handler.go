package admin

import "github.com/biji-next/internal/provider"

// Handler 后台管理处理器：文章的增删改
// 说明：所有路由都挂在会话鉴权之后。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
