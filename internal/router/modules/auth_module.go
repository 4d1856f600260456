package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/expense-service/internal/container"
	handlers "github.com/fintrack/expense-service/internal/interface/http"
	"github.com/fintrack/expense-service/internal/interface/middleware"
	"github.com/fintrack/expense-service/pkg/helpers"
)

// AuthModule wires account routes.
// Public: POST /api/auth/signup, /api/auth/signin, /api/auth/refresh
// Protected: POST /api/auth/logout, GET /api/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/signin", signinLimiter, m.Handler.Signin)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
	}
}
