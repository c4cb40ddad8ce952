package main

import (
	"context"
	"log"
	"time"

	"github.com/devfood/foodcourt/internal/bootstrap"
	"github.com/devfood/foodcourt/internal/container"
	"github.com/devfood/foodcourt/internal/router"
	"github.com/devfood/foodcourt/pkg/helpers"
)

func main() {
	app := bootstrap.New("product-service")
	cfg := app.Cfg
	logger := container.GetLogger()

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("failed to init elasticsearch client: %v", err)
	}
	container.SetES(es)

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(context.Background(), cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		container.SetGCS(gcs)
		app.OnShutdown(func() { _ = gcs.Close() })
	}

	reg := app.Registry()
	svc := router.InitProduct(reg)
	reg.RegisterAll()

	// Seed the starter catalog on first boot (no-op when products exist).
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := svc.EnsureSeeded(ctx); err != nil {
		logger.Warnf("catalog seeding failed: %v", err)
	}
	cancel()

	app.Run()
}
