package router

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/biji-next/internal/cache"
	"github.com/biji-next/internal/config"
	adminhandlers "github.com/biji-next/internal/http/handlers/admin"
	publichandlers "github.com/biji-next/internal/http/handlers/public"
	"github.com/biji-next/internal/logger"
	"github.com/biji-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	loadTemplates(r)

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	loginRule := RateLimitRule{
		Prefix:        cache.Key("rate", "login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(SessionMiddleware(c.Sessions))

	// 静态资源
	if dir := findStaticDir(); dir != "" {
		r.Static("/static", dir)
	}

	// 公开路由
	r.GET("/", publicHandler.Home)
	r.GET("/posts/:slug", publicHandler.ShowPost)
	r.GET("/login", publicHandler.LoginForm)
	r.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndFormField("username")), publicHandler.Login)
	r.GET("/logout", publicHandler.Logout)

	// 后台路由（会话鉴权）
	admin := r.Group("/admin", AdminGuardMiddleware())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/posts/new", adminHandler.NewPostForm)
		admin.POST("/posts", adminHandler.CreatePost)
		admin.GET("/posts/:slug/edit", adminHandler.EditPostForm)
		admin.POST("/posts/:slug", adminHandler.UpdatePost)
		admin.POST("/posts/:slug/delete", adminHandler.DeletePost)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

// loadTemplates 注册模板函数并加载模板目录
// 描述字段按已有 HTML 原样渲染，模板里用 raw 标记。
func loadTemplates(r *gin.Engine) {
	r.SetFuncMap(template.FuncMap{
		"raw": func(s string) template.HTML { return template.HTML(s) },
	})
	for _, dir := range []string{
		"web/templates",
		"../web/templates",
		"../../web/templates",
		"../../../web/templates",
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.LoadHTMLGlob(filepath.Join(dir, "*.html"))
			return
		}
	}
	logger.Warnw("templates_dir_not_found", "fallback", "no_html_rendering")
}

func findStaticDir() string {
	for _, dir := range []string{
		"web/static",
		"../web/static",
		"../../web/static",
		"../../../web/static",
	} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
