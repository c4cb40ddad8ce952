package main

import (
	"github.com/devfood/foodcourt/internal/bootstrap"
	"github.com/devfood/foodcourt/internal/container"
	"github.com/devfood/foodcourt/internal/router"
	"github.com/devfood/foodcourt/pkg/helpers"
)

func main() {
	app := bootstrap.New("order-service")
	cfg := app.Cfg
	logger := container.GetLogger()

	// Order events are best-effort: the service still takes orders when
	// the broker is down, it just cannot notify the worker.
	pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQOrderQueue)
	if err != nil {
		logger.Warnf("rabbitmq unavailable, order events disabled: %v", err)
	} else {
		container.SetRabbitPub(pub)
		app.OnShutdown(pub.Close)
	}

	reg := app.Registry()
	router.InitOrder(reg)
	reg.RegisterAll()

	app.Run()
}
