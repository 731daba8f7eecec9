package orders

import (
	"context"

	"courier-app/internal/domain"
	"courier-app/internal/gateway"
)

// orderService defines the order operations required by the order store.
type orderService interface {
	Pending(ctx context.Context) (gateway.Typed[[]domain.Order], error)
	Assigned(ctx context.Context) (gateway.Typed[[]domain.Order], error)
	Accept(ctx context.Context, orderID string) (gateway.Typed[domain.Order], error)
	MarkOutForDelivery(ctx context.Context, orderID, notes string) (gateway.Typed[domain.Order], error)
	MarkDelivered(ctx context.Context, orderID, notes, otp string) (gateway.Typed[domain.Order], error)
	Details(ctx context.Context, orderID string) (gateway.Typed[domain.Order], error)
}

// statsService is the profile slice the order store uses to refresh
// delivery statistics after a completed order.
type statsService interface {
	Stats(ctx context.Context) (gateway.Typed[domain.Stats], error)
}
