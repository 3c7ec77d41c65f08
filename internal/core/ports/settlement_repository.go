package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// SettlementRepository books the earnings and statistics that follow a delivery.
type SettlementRepository interface {
	// ApplyDelivery credits the restaurant with the order's items total and the assigned
	// driver with one delivery and the delivery fee. Orders without a driver only credit
	// the restaurant. It must run in the same transaction as the status change.
	ApplyDelivery(ctx context.Context, delivered *order.Order) error
}
