package main

import (
	"github.com/devfood/foodcourt/internal/bootstrap"
	"github.com/devfood/foodcourt/internal/router"
)

func main() {
	app := bootstrap.New("auth-service")

	reg := app.Registry()
	router.InitAuth(reg)
	reg.RegisterAll()

	app.Run()
}
