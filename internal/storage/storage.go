package storage

import (
	"context"
	"io"
)

// ObjectStore 对象存储接口
//
// 附件的上传、删除与公开地址均通过该接口完成；删除是尽力而为的，
// 调用方不依赖其结果做回滚。
type ObjectStore interface {
	Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, names ...string) error
	PublicURL(name string) string
}
