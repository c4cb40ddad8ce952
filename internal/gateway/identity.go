package gateway

import (
	"context"
	"time"

	"github.com/devfood/foodcourt/internal/domain/entity"
)

// IdentityGateway reads registered users from the user service.
type IdentityGateway struct {
	client *Client
}

func NewIdentityGateway(baseURL string, timeout time.Duration) *IdentityGateway {
	return &IdentityGateway{client: NewClient(baseURL, timeout)}
}

func (g *IdentityGateway) Users(ctx context.Context) ([]entity.User, error) {
	return getJSON[[]entity.User](ctx, g.client, "/api/users")
}
