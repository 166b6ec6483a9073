package service

import "errors"

var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTitleRequired 标题不能为空
	ErrTitleRequired = errors.New("title required")
	// ErrAttachmentTooLarge 附件超过大小限制
	ErrAttachmentTooLarge = errors.New("attachment too large")
	// ErrAttachmentType 附件类型不被允许
	ErrAttachmentType = errors.New("attachment type not allowed")
)
