package provider

import (
	"github.com/biji-next/internal/cache"
	"github.com/biji-next/internal/config"
	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/models"
	"github.com/biji-next/internal/repository"
	"github.com/biji-next/internal/service"
	"github.com/biji-next/internal/session"
	"github.com/biji-next/internal/storage"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	PostRepo repository.PostRepository

	// Collaborators
	ObjectStore storage.ObjectStore
	Sessions    *session.Manager

	// Services
	AuthService *service.AuthService
	PostService *service.PostService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	c.PostRepo = repository.NewPostRepository(models.DB)

	store, err := storage.NewMinIOStorage(cfg.Storage)
	if err != nil {
		logger.Errorw("provider_init_storage_failed", "error", err)
		panic(err)
	}
	c.ObjectStore = store

	var sessionStore session.Store
	if cache.Enabled() {
		sessionStore = session.NewRedisStore(cache.Client(), cache.Key("session")+":")
	} else {
		sessionStore = session.NewMemoryStore()
	}
	c.Sessions = session.NewManager(cfg.Session, sessionStore)

	c.AuthService = service.NewAuthService(cfg.Admin)
	c.PostService = service.NewPostService(c.PostRepo, c.ObjectStore, cfg.Upload)

	return c
}
