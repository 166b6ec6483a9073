package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biji-next/internal/config"
	"github.com/biji-next/internal/http/handlers/shared"
	"github.com/biji-next/internal/session"

	"github.com/gin-gonic/gin"
)

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Body.String() == "" {
		t.Fatalf("request id should be generated")
	}
	if w.Header().Get("X-Request-ID") != w.Body.String() {
		t.Fatalf("request id header should match context value")
	}
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") != "fixed-id" {
		t.Fatalf("incoming request id should be kept, got %s", w.Header().Get("X-Request-ID"))
	}
}

func TestAdminGuardRedirectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mutated := false
	r := gin.New()
	r.Use(AdminGuardMiddleware())
	r.POST("/admin/posts", func(c *gin.Context) {
		mutated = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/posts", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status want 302 got %d", w.Code)
	}
	if w.Header().Get("Location") != "/login" {
		t.Fatalf("redirect want /login got %s", w.Header().Get("Location"))
	}
	if mutated {
		t.Fatalf("guarded handler must not run for anonymous request")
	}
}

func TestSessionMiddlewareLoadsAuthenticatedSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mgr := session.NewManager(config.SessionConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		ExpireHours: 1,
	}, session.NewMemoryStore())

	// 先通过登录流程拿到 Cookie
	loginEngine := gin.New()
	loginEngine.POST("/login", func(c *gin.Context) {
		if _, err := mgr.Begin(c); err != nil {
			t.Fatalf("begin session failed: %v", err)
		}
		c.Status(http.StatusOK)
	})
	loginW := httptest.NewRecorder()
	loginEngine.ServeHTTP(loginW, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := loginW.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("login should set a cookie")
	}

	r := gin.New()
	r.Use(SessionMiddleware(mgr), AdminGuardMiddleware())
	r.GET("/admin", func(c *gin.Context) {
		if !shared.Authenticated(c) {
			t.Fatalf("session should be authenticated in handler")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("authenticated request want 200 got %d", w.Code)
	}
}

func TestSessionMiddlewareExpiredSessionIsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	mgr := session.NewManager(config.SessionConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		ExpireHours: 1,
	}, store)

	loginEngine := gin.New()
	loginEngine.POST("/login", func(c *gin.Context) {
		sess, err := mgr.Begin(c)
		if err != nil {
			t.Fatalf("begin session failed: %v", err)
		}
		// 会话在存储端被删除（等价于过期）
		if err := store.Delete(c.Request.Context(), sess.ID); err != nil {
			t.Fatalf("delete session failed: %v", err)
		}
		c.Status(http.StatusOK)
	})
	loginW := httptest.NewRecorder()
	loginEngine.ServeHTTP(loginW, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := loginW.Result().Cookies()

	r := gin.New()
	r.Use(SessionMiddleware(mgr), AdminGuardMiddleware())
	r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("stale cookie want 302 got %d", w.Code)
	}
}
