package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStorage 内存对象存储实现，用于测试与本地开发
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStorage 创建内存对象存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

// Upload 保存对象到内存
func (s *MemoryStorage) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
	return nil
}

// Remove 删除对象
func (s *MemoryStorage) Remove(ctx context.Context, names ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		delete(s.objects, name)
	}
	return nil
}

// PublicURL 返回对象的伪公开地址
func (s *MemoryStorage) PublicURL(name string) string {
	return fmt.Sprintf("memory://%s", name)
}

// Exists 判断对象是否存在
func (s *MemoryStorage) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[name]
	return ok
}

// Len 对象数量
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
