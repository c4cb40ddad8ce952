package application

import (
	"context"
	"time"
)

// Order event types published to the order queue.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// OrderEvent is the JSON payload put on the RabbitMQ queue when an order
// is created or its status changes. The order worker consumes it.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	UserEmail  string    `json:"user_email"`
	Total      float64   `json:"total,omitempty"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes JSON messages to a queue. Satisfied by
// helpers.RabbitPublisher; faked in tests.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
