package admin

import (
	"errors"
	"net/http"

	"github.com/biji-next/internal/http/handlers/shared"
	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/models"
	"github.com/biji-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Dashboard 后台文章列表
func (h *Handler) Dashboard(c *gin.Context) {
	posts, err := h.PostService.List()
	if err != nil {
		logger.Errorw("admin_list_posts_failed", "error", err)
		posts = []models.Post{}
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Posts": posts,
	})
}

// NewPostForm 新建文章表单（空白编辑页）
func (h *Handler) NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"IsNew":  true,
		"Action": "/admin/posts",
	})
}

// CreatePost 创建文章，成功后回首页
func (h *Handler) CreatePost(c *gin.Context) {
	input, err := h.bindPostInput(c)
	if err != nil {
		h.renderWriteError(c, err)
		return
	}

	post, err := h.PostService.Create(c.Request.Context(), input)
	if err != nil {
		h.renderWriteError(c, err)
		return
	}
	logger.Infow("admin_post_created", "id", post.ID, "slug", post.Slug)
	c.Redirect(http.StatusFound, "/")
}

// EditPostForm 编辑文章表单，slug 不存在回后台列表
func (h *Handler) EditPostForm(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.PostService.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			logger.Errorw("admin_get_post_failed", "slug", slug, "error", err)
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Post":   post,
		"Action": "/admin/posts/" + post.Slug,
	})
}

// UpdatePost 更新文章，成功后回后台列表
func (h *Handler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")
	input, err := h.bindPostInput(c)
	if err != nil {
		h.renderWriteError(c, err)
		return
	}
	input.RemoveFile = c.PostForm("remove_file") != ""

	post, err := h.PostService.Update(c.Request.Context(), slug, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		h.renderWriteError(c, err)
		return
	}
	logger.Infow("admin_post_updated", "id", post.ID, "slug", post.Slug)
	c.Redirect(http.StatusFound, "/admin")
}

// DeletePost 删除文章，slug 不存在视为已删除
func (h *Handler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")
	if err := h.PostService.Delete(c.Request.Context(), slug); err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			h.renderWriteError(c, err)
			return
		}
	} else {
		logger.Infow("admin_post_deleted", "slug", slug)
	}
	c.Redirect(http.StatusFound, "/admin")
}

// bindPostInput 从表单读取标题、描述和可选附件
func (h *Handler) bindPostInput(c *gin.Context) (service.PostInput, error) {
	input := service.PostInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	file, err := c.FormFile("file")
	switch {
	case err == nil:
		input.File = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// 没有附件是合法的
	default:
		return input, err
	}
	return input, nil
}

// renderWriteError 写操作失败的错误页：校验错误 400，其余 500
func (h *Handler) renderWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		shared.RenderError(c, http.StatusBadRequest, "标题不能为空")
	case errors.Is(err, service.ErrAttachmentTooLarge):
		shared.RenderError(c, http.StatusBadRequest, "附件超过大小限制")
	case errors.Is(err, service.ErrAttachmentType):
		shared.RenderError(c, http.StatusBadRequest, "附件类型不被允许")
	default:
		logger.Errorw("admin_post_write_failed", "path", c.FullPath(), "error", err)
		shared.RenderError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
	}
}
