package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/biji-next/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultCookieName = "bj_session"

// cookieClaims Cookie 里只携带签名过的 session id
type cookieClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager 会话管理器：签发/解析 Cookie，读写会话存储
type Manager struct {
	cfg   config.SessionConfig
	store Store
}

// NewManager 创建会话管理器
func NewManager(cfg config.SessionConfig, store Store) *Manager {
	return &Manager{cfg: cfg, store: store}
}

// TTL 会话有效期
func (m *Manager) TTL() time.Duration {
	hours := m.cfg.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func (m *Manager) cookieName() string {
	if m.cfg.CookieName == "" {
		return defaultCookieName
	}
	return m.cfg.CookieName
}

// Begin 登录成功后创建已认证会话并下发 Cookie
func (m *Manager) Begin(c *gin.Context) (*Session, error) {
	sess := &Session{
		ID:            uuid.NewString(),
		Authenticated: true,
		IssuedAt:      time.Now(),
	}
	if err := m.store.Save(c.Request.Context(), sess, m.TTL()); err != nil {
		return nil, err
	}

	token, err := m.signSessionID(sess.ID)
	if err != nil {
		return nil, err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName(), token, int(m.TTL().Seconds()), "/", "", m.cfg.Secure, true)
	return sess, nil
}

// Load 从请求 Cookie 解析并加载会话，没有有效会话返回 nil
func (m *Manager) Load(c *gin.Context) (*Session, error) {
	raw, err := c.Cookie(m.cookieName())
	if err != nil || raw == "" {
		return nil, nil
	}
	id, err := m.parseSessionID(raw)
	if err != nil {
		// 签名无效的 Cookie 按无会话处理
		return nil, nil
	}
	return m.store.Get(c.Request.Context(), id)
}

// Clear 登出：删除会话并作废 Cookie
func (m *Manager) Clear(c *gin.Context) error {
	var clearErr error
	raw, err := c.Cookie(m.cookieName())
	if err == nil && raw != "" {
		if id, parseErr := m.parseSessionID(raw); parseErr == nil {
			clearErr = m.store.Delete(c.Request.Context(), id)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName(), "", -1, "/", "", m.cfg.Secure, true)
	return clearErr
}

func (m *Manager) signSessionID(id string) (string, error) {
	if m.cfg.Secret == "" {
		return "", errors.New("session secret missing")
	}
	now := time.Now()
	claims := cookieClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.cfg.Secret))
}

func (m *Manager) parseSessionID(raw string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &cookieClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("无效的会话 Cookie")
	}
	return claims.SessionID, nil
}
