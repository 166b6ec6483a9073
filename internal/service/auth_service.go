package service

import (
	"crypto/subtle"
	"strings"

	"github.com/biji-next/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 管理员认证服务
//
// 凭据来自配置而非数据库：站点只有一个管理员。
// 配置的密码可以是 bcrypt 哈希（$2 开头），也可以是明文。
type AuthService struct {
	cfg config.AdminConfig
}

// NewAuthService 创建认证服务
func NewAuthService(cfg config.AdminConfig) *AuthService {
	return &AuthService{cfg: cfg}
}

// Verify 校验用户名和密码，失败统一返回 ErrInvalidCredentials
func (s *AuthService) Verify(username, password string) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1

	var passOK bool
	if strings.HasPrefix(s.cfg.Password, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.cfg.Password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
