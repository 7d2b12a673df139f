package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/shared/sessions"
)

func newAuthRouter(t *testing.T, mgr *sessions.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(mgr, func(path string) bool {
		return strings.HasPrefix(path, "/signup")
	}))
	r.GET("/jobs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	r.POST("/signup", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := newAuthRouter(t, sessions.NewManager("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	mgr := sessions.NewManager("test-secret")
	r := newAuthRouter(t, mgr)

	token, err := mgr.Issue("user-42", "u@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "user-42") {
		t.Fatalf("expected user id in body, got %s", resp.Body.String())
	}
}

func TestAuthSkipsPublicPaths(t *testing.T) {
	r := newAuthRouter(t, sessions.NewManager("test-secret"))

	req := httptest.NewRequest(http.MethodPost, "/signup", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public path, got %d", resp.Code)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	mgr := sessions.NewManager("test-secret")
	r := newAuthRouter(t, mgr)

	token, err := sessions.NewManager("other-secret").Issue("user-42", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
