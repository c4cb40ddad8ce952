package router

import (
	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/container"
	"github.com/devfood/foodcourt/internal/gateway"
	"github.com/devfood/foodcourt/internal/infrastructure/mongodb"
	handlers "github.com/devfood/foodcourt/internal/interface/http"
	"github.com/devfood/foodcourt/internal/router/modules"
)

// Each service binary wires exactly one module set from the container.
// The container must hold config, logger, mongo and redis (plus the
// service-specific clients) before any Init* function runs.

func InitAuth(r *Registry) {
	cfg := container.GetConfig()

	users := mongodb.NewUserRepository(container.GetMongo())
	svc := application.NewAuthService(users, container.GetTokens(), container.GetRedis(), container.GetLogger())
	h := handlers.NewAuthHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(h, container.GetTokens()))
}

func InitUser(r *Registry) {
	users := mongodb.NewUserRepository(container.GetMongo())
	svc := application.NewUserService(users, container.GetLogger())
	h := handlers.NewUserHandler(svc, container.GetLogger())

	r.Add(modules.NewUserModule(h))
}

func InitProduct(r *Registry) *application.ProductService {
	cfg := container.GetConfig()

	products := mongodb.NewProductRepository(container.GetMongo())
	svc := application.NewProductService(
		products,
		container.GetLogger(),
		container.GetES(),
		cfg.ESProductsIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)
	h := handlers.NewProductHandler(svc, container.GetLogger())

	r.Add(modules.NewProductModule(h, container.GetTokens()))
	return svc
}

func InitOrder(r *Registry) {
	cfg := container.GetConfig()

	orders := mongodb.NewOrderRepository(container.GetMongo())
	users := mongodb.NewUserRepository(container.GetMongo())

	var pub application.EventPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	svc := application.NewOrderService(orders, users, pub, container.GetLogger())

	catalog := gateway.NewCatalogGateway(cfg.ProductServiceURL, cfg.GatewayTimeout)
	identity := gateway.NewIdentityGateway(cfg.UserServiceURL, cfg.GatewayTimeout)
	h := handlers.NewOrderHandler(svc, catalog, identity, container.GetLogger())

	r.Add(modules.NewOrderModule(h, container.GetTokens()))
}
