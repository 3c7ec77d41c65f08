package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// StatusMirror publishes the latest order status to the realtime store read by the
// restaurant, customer and driver dashboards.
type StatusMirror interface {
	Mirror(ctx context.Context, event order.StatusChanged) error
}
