package main

import (
	"github.com/devfood/foodcourt/internal/bootstrap"
	"github.com/devfood/foodcourt/internal/router"
)

func main() {
	app := bootstrap.New("user-service")

	reg := app.Registry()
	router.InitUser(reg)
	reg.RegisterAll()

	app.Run()
}
