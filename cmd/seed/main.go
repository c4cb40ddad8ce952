package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/devfood/foodcourt/config"
	"github.com/devfood/foodcourt/internal/application"
	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
	"github.com/devfood/foodcourt/internal/infrastructure/mongodb"
	"github.com/devfood/foodcourt/pkg/helpers"
)

// seed provisions a demo admin account and the starter catalog so a
// fresh environment is usable right away. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = mongodb.Disconnect(client) }()
	db := client.Database(cfg.MongoDatabase)

	users := mongodb.NewUserRepository(db)
	products := mongodb.NewProductRepository(db)

	email := "admin@foodcourt.local"
	password := "admin123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	err = users.Create(ctx, &entity.User{
		Email:     email,
		Password:  hash,
		Name:      "Foodcourt Admin",
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	switch {
	case err == nil:
		fmt.Printf("seeded admin: email=%s password=%s\n", email, password)
	case errors.Is(err, repository.ErrDuplicate):
		fmt.Printf("admin already exists: email=%s\n", email)
	default:
		log.Fatalf("failed to seed admin: %v", err)
	}

	n, err := products.Count(ctx)
	if err != nil {
		log.Fatalf("failed to count products: %v", err)
	}
	if n > 0 {
		fmt.Printf("catalog already has %d products, skipping seed\n", n)
		return
	}
	catalog := application.StarterCatalog()
	if err := products.InsertMany(ctx, catalog); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	fmt.Printf("seeded %d products\n", len(catalog))
}
