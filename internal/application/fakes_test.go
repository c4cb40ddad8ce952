package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
)

// In-memory fakes for the repository interfaces, shared across the
// service tests in this package.

type fakeUserRepo struct {
	users     map[string]entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, email, name, address string) error {
	u, ok := f.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Name = name
	u.Address = address
	f.users[email] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, email string) error {
	if _, ok := f.users[email]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, email)
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) (string, error) {
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return p.ID.Hex(), nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	all, _ := f.List(ctx)
	out := all[:0]
	for _, p := range all {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListByCategory(_ context.Context, category string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range f.products {
		if p.Category == category && p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, p *entity.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	cp.ID = oid
	f.products[id] = cp
	return nil
}

func (f *fakeProductRepo) SetImageURL(_ context.Context, id, url string) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.ImageURL = url
	f.products[id] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range f.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) InsertMany(_ context.Context, products []entity.Product) error {
	for _, p := range products {
		p.ID = primitive.NewObjectID()
		f.products[p.ID.Hex()] = p
	}
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeOrderRepo struct {
	orders map[string]entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) (string, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = *o
	return o.ID.Hex(), nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, email string) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range f.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

type fakePublisher struct {
	events []OrderEvent
	err    error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	if ev, ok := body.(OrderEvent); ok {
		f.events = append(f.events, ev)
	}
	return nil
}

var _ EventPublisher = (*fakePublisher)(nil)
