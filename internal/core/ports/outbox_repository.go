package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OutboxRepository keeps status change events until they have been delivered to
// notification and mirror consumers.
type OutboxRepository interface {
	// Add stores events inside the current transaction.
	Add(ctx context.Context, events ...order.StatusChanged) error

	// GetUnpublished returns at most limit undelivered events, oldest first. Rows are
	// locked and skipped by concurrent relays until the transaction ends.
	GetUnpublished(ctx context.Context, limit int) ([]order.StatusChanged, error)

	// MarkPublished flags an event as delivered.
	MarkPublished(ctx context.Context, eventID kernel.UUID, at time.Time) error
}
