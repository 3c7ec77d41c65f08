package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// StatusChanged is recorded each time a decision changes the stored status.
// Downstream it drives the customer push, the topic broadcast and the dashboard mirror.
type StatusChanged struct {
	EventID      kernel.UUID
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       Status
	OccurredAt   time.Time
}
