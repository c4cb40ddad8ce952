package bootstrap

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devfood/foodcourt/config"
	"github.com/devfood/foodcourt/internal/container"
	"github.com/devfood/foodcourt/internal/infrastructure/mongodb"
	"github.com/devfood/foodcourt/internal/interface/middleware"
	"github.com/devfood/foodcourt/internal/router"
	"github.com/devfood/foodcourt/pkg/helpers"
	"github.com/devfood/foodcourt/pkg/validation"
)

// App holds the shared infrastructure every foodcourt service starts
// with: config, logger, mongo and redis, wired into the container.
type App struct {
	Cfg     *config.Config
	Engine  *gin.Engine
	cleanup []func()
}

// New loads configuration, connects the shared infrastructure and
// prepares a gin engine with the global middleware chain. Service mains
// add their own clients to the container, register router modules and
// then call Run.
func New(appName string) *App {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	cfg.AppName = appName
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetMongo(client.Database(cfg.MongoDatabase))
	container.SetRedis(rdb)
	container.SetTokens(helpers.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL))

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RealIP())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		engine.Use(gin.Logger())
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.AppName})
	})

	app := &App{Cfg: cfg, Engine: engine}
	app.OnShutdown(func() { _ = mongodb.Disconnect(client) })
	app.OnShutdown(func() { _ = rdb.Close() })
	return app
}

// OnShutdown registers a cleanup hook run after the HTTP server stops,
// in reverse registration order.
func (a *App) OnShutdown(fn func()) {
	a.cleanup = append(a.cleanup, fn)
}

// Registry returns a fresh router registry bound to the engine.
func (a *App) Registry() *router.Registry {
	return router.NewRegistry(a.Engine)
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() {
	logger := container.GetLogger()

	srv := &http.Server{Addr: ":" + a.Cfg.Port, Handler: a.Engine}
	go func() {
		logger.Infof("%s listening on :%s", a.Cfg.AppName, a.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}

	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	logger.Info("server exited properly")
}
