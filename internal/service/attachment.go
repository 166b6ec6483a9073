package service

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/biji-next/internal/config"
)

const defaultMaxUploadSize = 10 << 20 // 10MB

// validateAttachment 校验上传附件的大小与扩展名
func validateAttachment(cfg config.UploadConfig, file *multipart.FileHeader) error {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	if file.Size > maxSize {
		return ErrAttachmentTooLarge
	}
	if len(cfg.AllowedExtensions) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, allowed := range cfg.AllowedExtensions {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return nil
		}
	}
	return ErrAttachmentType
}

// attachmentObjectName 生成存储对象名：纳秒时间戳 + 原始扩展名。
// 对象名不含原始文件名，避免路径与编码问题带进存储层。
func attachmentObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}

// attachmentContentType 根据扩展名推断 Content-Type
func attachmentContentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
