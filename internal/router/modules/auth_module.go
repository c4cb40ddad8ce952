package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfood/foodcourt/internal/container"
	handlers "github.com/devfood/foodcourt/internal/interface/http"
	"github.com/devfood/foodcourt/internal/interface/middleware"
	"github.com/devfood/foodcourt/pkg/helpers"
)

// AuthModule wires the auth handlers into routes.
// Public: POST /api/login, GET /api/verify
// Protected: POST /api/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  *helpers.TokenManager
}

func NewAuthModule(h *handlers.AuthHandler, tokens *helpers.TokenManager) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.GET("/verify", m.Handler.Verify)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.Tokens))
	{
		auth.POST("/logout", m.Handler.Logout)
	}
}
