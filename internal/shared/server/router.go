package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/shared/config"
	"jobapp-backend/internal/shared/server/middleware"
	"jobapp-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a handler's routes to a router group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config            config.Config
	UserHandler       RouteRegistrar
	ResumeHandler     RouteRegistrar
	AppHandler        RouteRegistrar
	AssistantHandler  RouteRegistrar
	GoogleAuth        RouteRegistrar
	GenerateRateLimit *middleware.RateLimiter
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
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter:      deps.GenerateRateLimit,
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				// Generation actions hit a paid, rate-limited remote API.
				"GENERATE": {Rate: 0.2, Burst: 3},
				"DEFAULT":  {Rate: 5, Burst: 20},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	for _, h := range []RouteRegistrar{
		deps.GoogleAuth,
		deps.UserHandler,
		deps.ResumeHandler,
		deps.AppHandler,
		deps.AssistantHandler,
	} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.FullPath(), "/api/v1/assist/") {
		return "GENERATE"
	}
	return "DEFAULT"
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
