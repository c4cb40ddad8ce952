package repository

import (
	"context"

	"github.com/devfood/foodcourt/internal/domain/entity"
)

// OrderRepository defines persistence operations on the order store.
// List results are ordered newest first.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, email string) ([]entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
