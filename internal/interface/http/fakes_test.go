package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
)

type memUserRepo struct {
	users map[string]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	m.users[u.Email] = *u
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) Update(_ context.Context, email, name, address string) error {
	u, ok := m.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Name = name
	u.Address = address
	m.users[email] = u
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, email string) error {
	if _, ok := m.users[email]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, email)
	return nil
}

var _ repository.UserRepository = (*memUserRepo)(nil)

type memOrderRepo struct {
	orders map[string]entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]entity.Order{}}
}

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) (string, error) {
	o.ID = primitive.NewObjectID()
	m.orders[o.ID.Hex()] = *o
	return o.ID.Hex(), nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (m *memOrderRepo) ListByUser(_ context.Context, email string) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range m.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) List(_ context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return nil
}

func (m *memOrderRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := m.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

var _ repository.OrderRepository = (*memOrderRepo)(nil)

type memProductRepo struct {
	products map[string]entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]entity.Product{}}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) (string, error) {
	p.ID = primitive.NewObjectID()
	m.products[p.ID.Hex()] = *p
	return p.ID.Hex(), nil
}

func (m *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (m *memProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProductRepo) ListAvailable(_ context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range m.products {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) ListByCategory(_ context.Context, category string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range m.products {
		if p.Category == category && p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, id string, p *entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	cp.ID = oid
	m.products[id] = cp
	return nil
}

func (m *memProductRepo) SetImageURL(_ context.Context, id, url string) error {
	p, ok := m.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ImageURL = url
	m.products[id] = p
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (m *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *memProductRepo) InsertMany(_ context.Context, products []entity.Product) error {
	for _, p := range products {
		p.ID = primitive.NewObjectID()
		m.products[p.ID.Hex()] = p
	}
	return nil
}

var _ repository.ProductRepository = (*memProductRepo)(nil)
