package repository

import (
	"context"

	"github.com/devfood/foodcourt/internal/domain/entity"
)

// ProductRepository defines persistence operations on the catalog store.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	ListAvailable(ctx context.Context) ([]entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Product, error)
	Update(ctx context.Context, id string, p *entity.Product) error
	SetImageURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []entity.Product) error
}
