package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RenderError 渲染通用错误页
func RenderError(c *gin.Context, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
