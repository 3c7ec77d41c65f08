// Package ports defines the contracts between the order domain and infrastructure:
// persistence, the outbox, push notifications and the realtime status mirror.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and driver changes of an existing order.
	// Items and the pricing breakdown are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding transaction
	// ends, so that concurrent status changes of the same order are serialized and the
	// status engine always sees the latest stored status.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
