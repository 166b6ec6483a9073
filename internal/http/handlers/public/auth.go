package public

import (
	"net/http"
	"strings"

	"github.com/biji-next/internal/http/handlers/shared"
	"github.com/biji-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// LoginForm 登录页；已登录直接进后台
func (h *Handler) LoginForm(c *gin.Context) {
	if shared.Authenticated(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Failed": c.Query("failed") != "",
	})
}

// Login 校验管理员凭据，成功创建已认证会话
// 失败不区分用户名错还是密码错，统一回登录页。
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if err := h.AuthService.Verify(username, password); err != nil {
		logger.Warnw("admin_login_failed",
			"username", username,
			"ip", c.ClientIP(),
		)
		c.Redirect(http.StatusFound, "/login?failed=1")
		return
	}

	if _, err := h.Sessions.Begin(c); err != nil {
		logger.Errorw("admin_session_begin_failed", "error", err)
		c.Redirect(http.StatusFound, "/login?failed=1")
		return
	}
	logger.Infow("admin_login_success", "username", username, "ip", c.ClientIP())
	c.Redirect(http.StatusFound, "/admin")
}

// Logout 清除会话并回首页
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Clear(c); err != nil {
		logger.Warnw("admin_logout_clear_failed", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
