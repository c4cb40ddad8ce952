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

// ProductModule wires the catalog handlers into routes.
// Reads are public (the order service consumes /api/products and
// /api/categories); mutations require an admin token.
type ProductModule struct {
	Handler *handlers.ProductHandler
	Tokens  *helpers.TokenManager
}

func NewProductModule(h *handlers.ProductHandler, tokens *helpers.TokenManager) *ProductModule {
	return &ProductModule{Handler: h, Tokens: tokens}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/products", listLimiter, m.Handler.List)
	rg.GET("/products/search", m.Handler.Search)
	rg.GET("/products/:id", m.Handler.GetByID)
	rg.GET("/categories", listLimiter, m.Handler.Categories)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.Tokens), middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.POST("/products", m.Handler.Create)
		admin.PUT("/products/:id", m.Handler.Update)
		admin.DELETE("/products/:id", m.Handler.Delete)
		admin.POST("/products/:id/image", m.Handler.UploadImage)
	}
}
