package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/biji-next/internal/http/handlers/shared"
	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 从 Cookie 加载会话写入上下文
// 加载失败（存储不可用）按无会话处理，只记日志。
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions != nil {
			sess, err := sessions.Load(c)
			if err != nil {
				logger.Warnw("session_load_failed",
					"request_id", getRequestID(c),
					"error", err,
				)
			} else if sess != nil {
				c.Set(shared.SessionKey, sess)
			}
		}
		c.Next()
	}
}

// AdminGuardMiddleware 后台鉴权：没有已认证会话一律重定向到登录页
func AdminGuardMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shared.Authenticated(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
