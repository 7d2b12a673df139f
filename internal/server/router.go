package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillbridge/internal/applications"
	googleauth "skillbridge/internal/auth"
	"skillbridge/internal/jobs"
	"skillbridge/internal/match"
	"skillbridge/internal/profiles"
	"skillbridge/internal/shared/config"
	"skillbridge/internal/shared/metrics"
	"skillbridge/internal/shared/server/middleware"
	"skillbridge/internal/shared/server/respond"
	"skillbridge/internal/shared/sessions"
	"skillbridge/internal/uploads"
	"skillbridge/internal/users"
)

const matchRateGroup = "MATCH"

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config       config.Config
	Sessions     *sessions.Manager
	Users        *users.Handler
	Profiles     *profiles.Handler
	Jobs         *jobs.Handler
	Applications *applications.Handler
	Uploads      *uploads.Handler
	Match        *match.Handler
	GoogleAuth   *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Sessions, skipAuth),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":      {Rate: 20, Burst: 40},
				matchRateGroup: {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.URL.Path == "/ml/summarize" {
					return matchRateGroup
				}
				return ""
			},
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	root := &r.RouterGroup
	deps.Uploads.RegisterFileRoutes(root)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(root)
	}
	deps.Users.RegisterRoutes(root)
	deps.Profiles.RegisterRoutes(root)
	deps.Jobs.RegisterRoutes(root)
	deps.Applications.RegisterRoutes(root)
	deps.Uploads.RegisterRoutes(root)
	deps.Match.RegisterRoutes(root)

	return r
}

// skipAuth lists the surfaces that must work without a session: account
// creation, the auth flows themselves, stored resume files, and probes.
func skipAuth(path string) bool {
	switch path {
	case "/signup", "/health", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/auth/") || strings.HasPrefix(path, "/files/")
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
