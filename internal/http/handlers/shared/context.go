package shared

import (
	"github.com/biji-next/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionKey 会话在 gin.Context 中的 key，由中间件写入
const SessionKey = "session"

// CurrentSession 读取中间件加载的会话，没有返回 nil
func CurrentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// Authenticated 当前请求是否携带已认证会话
func Authenticated(c *gin.Context) bool {
	sess := CurrentSession(c)
	return sess != nil && sess.Authenticated
}
