package repository

import (
	"context"

	"github.com/devfood/foodcourt/internal/domain/entity"
)

// UserRepository defines persistence operations on the identity store.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, email, name, address string) error
	Delete(ctx context.Context, email string) error
}
