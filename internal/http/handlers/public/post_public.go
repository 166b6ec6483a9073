package public

import (
	"errors"
	"net/http"

	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/models"
	"github.com/biji-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Home 首页文章列表（创建时间倒序）
// 列表读取失败按空列表降级渲染，不向访客暴露错误。
func (h *Handler) Home(c *gin.Context) {
	posts, err := h.PostService.List()
	if err != nil {
		logger.Errorw("public_list_posts_failed", "error", err)
		posts = []models.Post{}
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Posts": posts,
	})
}

// ShowPost 文章详情页，slug 不存在或读取失败一律回首页
func (h *Handler) ShowPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.PostService.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			logger.Errorw("public_get_post_failed", "slug", slug, "error", err)
		}
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{
		"Post": post,
	})
}
