package events

import (
	"context"
	"time"

	"github.com/amansinghakash/legacy-battery/internal/domain"
)

// OrderPlacedEvent is the payload published when a checkout reaches success.
// Nothing in this process consumes it; it exists for downstream systems.
type OrderPlacedEvent struct {
	OrderID   string            `json:"order_id"`
	SessionID string            `json:"session_id"`
	Items     []domain.CartItem `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	Tax       float64           `json:"tax"`
	Shipping  float64           `json:"shipping"`
	Total     float64           `json:"total"`
	PlacedAt  time.Time         `json:"placed_at"`
}

// OrderPublisher publishes order lifecycle events.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) PublishOrderPlaced(context.Context, OrderPlacedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
