package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrNoItems        = errors.New("order has no items")
	ErrInvalidItem    = errors.New("invalid order item")
)

// OrderService owns the order store. Orders are created for existing
// users only; line totals and the order total are derived server-side
// from quantity and unit price rather than trusted from the caller.
type OrderService struct {
	Orders repository.OrderRepository
	Users  repository.UserRepository
	Pub    EventPublisher
	Logger *logrus.Logger
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, pub EventPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Users: users, Pub: pub, Logger: logger}
}

type OrderItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// Create validates the user and items, computes totals, and persists the
// order with status pending. No order is written when the user is absent.
func (s *OrderService) Create(ctx context.Context, userEmail string, items []OrderItemInput) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	if _, err := s.Users.GetByEmail(ctx, userEmail); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	lines := make([]entity.OrderItem, 0, len(items))
	total := decimal.Zero
	for _, in := range items {
		if in.Name == "" || in.Quantity <= 0 || in.UnitPrice <= 0 {
			return nil, ErrInvalidItem
		}
		unit := decimal.NewFromFloat(in.UnitPrice)
		line := unit.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2)
		lines = append(lines, entity.OrderItem{
			Name:      in.Name,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			Total:     line.InexactFloat64(),
		})
		total = total.Add(line)
	}

	o := &entity.Order{
		UserEmail: userEmail,
		Items:     lines,
		Total:     total.Round(2).InexactFloat64(),
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, OrderEvent{
		Type:       EventOrderCreated,
		OrderID:    id,
		UserEmail:  o.UserEmail,
		Total:      o.Total,
		Status:     o.Status,
		OccurredAt: o.CreatedAt,
	})
	return o, nil
}

// GetByID returns the order or ErrOrderNotFound. A malformed identifier
// and an absent record are deliberately indistinguishable here.
func (s *OrderService) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]entity.Order, error) {
	return s.Orders.ListByUser(ctx, email)
}

func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.Orders.List(ctx)
}

// UpdateStatus applies a single-field status update. Any non-empty status
// string is accepted; there is no terminal-state protection.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.Orders.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return ErrInvalidOrderID
		case errors.Is(err, repository.ErrNotFound):
			return ErrOrderNotFound
		}
		return err
	}
	ev := OrderEvent{
		Type:       EventOrderStatusUpdated,
		OrderID:    id,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	// The event needs a recipient for the notification worker.
	if o, err := s.Orders.GetByID(ctx, id); err == nil {
		ev.UserEmail = o.UserEmail
		ev.Total = o.Total
	} else if s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", id).Warn("order reload for event failed")
	}
	s.publish(ctx, ev)
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.Orders.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return ErrInvalidOrderID
		case errors.Is(err, repository.ErrNotFound):
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, ev OrderEvent) {
	if s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", ev.OrderID).Warn("order event publish failed")
	}
}
