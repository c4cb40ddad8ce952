package gateway

import (
	"context"
	"time"

	"github.com/devfood/foodcourt/internal/domain/entity"
)

// CatalogGateway reads products and categories from the product service.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(baseURL string, timeout time.Duration) *CatalogGateway {
	return &CatalogGateway{client: NewClient(baseURL, timeout)}
}

func (g *CatalogGateway) Products(ctx context.Context) ([]entity.Product, error) {
	return getJSON[[]entity.Product](ctx, g.client, "/api/products")
}

func (g *CatalogGateway) Categories(ctx context.Context) ([]string, error) {
	return getJSON[[]string](ctx, g.client, "/api/categories")
}
