package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfood/foodcourt/internal/container"
	handlers "github.com/devfood/foodcourt/internal/interface/http"
	"github.com/devfood/foodcourt/internal/interface/middleware"
)

// UserModule wires the identity CRUD handlers into routes.
// Registration is public; the list endpoint is also consumed by the
// order service over the internal network.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.GET("/users", listLimiter, m.Handler.List)
	rg.GET("/users/:email", m.Handler.GetByEmail)
	rg.PUT("/users/:email", m.Handler.Update)
	rg.DELETE("/users/:email", m.Handler.Delete)
}
