package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/biji-next/internal/config"
	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/models"
	"github.com/biji-next/internal/repository"
	"github.com/biji-next/internal/storage"
)

// PostInput 创建/编辑文章的表单输入
type PostInput struct {
	Title       string
	Description string
	File        *multipart.FileHeader // 新上传的附件，可为空
	RemoveFile  bool                  // 编辑时勾选移除现有附件
}

// PostService 文章业务逻辑
type PostService struct {
	repo   repository.PostRepository
	store  storage.ObjectStore
	upload config.UploadConfig
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository, store storage.ObjectStore, upload config.UploadConfig) *PostService {
	return &PostService{repo: repo, store: store, upload: upload}
}

// List 文章列表（创建时间倒序）
func (s *PostService) List() ([]models.Post, error) {
	return s.repo.List()
}

// GetBySlug 根据 slug 获取文章，不存在返回 ErrNotFound
func (s *PostService) GetBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章：派生唯一 slug，附件先上传后写库。
// 写库失败时尽力删除已上传的对象，删除失败只记日志。
func (s *PostService) Create(ctx context.Context, input PostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	slug, err := s.resolveCreateSlug(title)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Slug:        slug,
	}

	if input.File != nil {
		objectName, err := s.uploadAttachment(ctx, input.File)
		if err != nil {
			return nil, err
		}
		post.FileObject = objectName
		post.FileURL = s.store.PublicURL(objectName)
	}

	if err := s.repo.Create(post); err != nil {
		if post.FileObject != "" {
			s.removeObjects(ctx, post.FileObject)
		}
		return nil, err
	}
	return post, nil
}

// Update 编辑文章：重新派生 slug（排除自身），处理附件的替换与移除。
// 新附件上传成功后才删除旧对象；旧对象删除失败不回滚，只记日志。
func (s *PostService) Update(ctx context.Context, slug string, input PostInput) (*models.Post, error) {
	post, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	newSlug, err := s.resolveEditSlug(title, post.ID)
	if err != nil {
		return nil, err
	}

	oldObject := post.FileObject
	switch {
	case input.File != nil:
		objectName, err := s.uploadAttachment(ctx, input.File)
		if err != nil {
			return nil, err
		}
		post.FileObject = objectName
		post.FileURL = s.store.PublicURL(objectName)
	case input.RemoveFile:
		post.FileObject = ""
		post.FileURL = ""
	}

	post.Title = title
	post.Description = strings.TrimSpace(input.Description)
	post.Slug = newSlug

	if err := s.repo.Update(post); err != nil {
		if post.FileObject != "" && post.FileObject != oldObject {
			s.removeObjects(ctx, post.FileObject)
		}
		return nil, err
	}

	if oldObject != "" && oldObject != post.FileObject {
		s.removeObjects(ctx, oldObject)
	}
	return post, nil
}

// Delete 删除文章：先尽力删除附件对象，再删除记录
func (s *PostService) Delete(ctx context.Context, slug string) error {
	post, err := s.GetBySlug(slug)
	if err != nil {
		return err
	}
	if post.FileObject != "" {
		s.removeObjects(ctx, post.FileObject)
	}
	return s.repo.Delete(post.ID)
}

// uploadAttachment 校验并上传附件，返回对象名
func (s *PostService) uploadAttachment(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := validateAttachment(s.upload, file); err != nil {
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectName := attachmentObjectName(file.Filename)
	contentType := attachmentContentType(file.Filename)
	if err := s.store.Upload(ctx, objectName, src, file.Size, contentType); err != nil {
		return "", err
	}
	return objectName, nil
}

// removeObjects 尽力而为地删除对象，失败只记日志（可能留下孤儿对象）
func (s *PostService) removeObjects(ctx context.Context, names ...string) {
	if err := s.store.Remove(ctx, names...); err != nil {
		logger.Warnw("attachment_remove_failed",
			"objects", names,
			"error", err,
		)
	}
}
