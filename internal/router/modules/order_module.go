package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfood/foodcourt/internal/container"
	"github.com/devfood/foodcourt/internal/domain/entity"
	handlers "github.com/devfood/foodcourt/internal/interface/http"
	"github.com/devfood/foodcourt/internal/interface/middleware"
	"github.com/devfood/foodcourt/pkg/helpers"
)

// OrderModule wires the order workflow handlers into routes.
// Status updates and deletion are admin operations; everything else is
// available to any authenticated caller.
type OrderModule struct {
	Handler *handlers.OrderHandler
	Tokens  *helpers.TokenManager
}

func NewOrderModule(h *handlers.OrderHandler, tokens *helpers.TokenManager) *OrderModule {
	return &OrderModule{Handler: h, Tokens: tokens}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByEmail(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.Tokens))
	{
		auth.POST("/orders", createLimiter, m.Handler.Create)
		auth.GET("/orders", m.Handler.List)
		auth.GET("/orders/options", m.Handler.Options)
		auth.GET("/orders/user/:email", m.Handler.ListByUser)
		auth.GET("/orders/:id", m.Handler.GetByID)
	}

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.Tokens), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.PATCH("/orders/:id/status", m.Handler.UpdateStatus)
		admin.DELETE("/orders/:id", m.Handler.Delete)
	}
}
