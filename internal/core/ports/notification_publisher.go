package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// Notification is a push message about an order. Delivery to devices happens in a
// separate service that resolves the recipient's push token.
type Notification struct {
	OrderID     kernel.UUID
	RecipientID kernel.UUID
	Status      order.Status
	Title       string
	Body        string
	MessageType string
}

// NotificationPublisher hands notifications over to the push delivery service.
type NotificationPublisher interface {
	// NotifyCustomer sends n to the customer identified by n.RecipientID.
	NotifyCustomer(ctx context.Context, n Notification) error

	// BroadcastTopic sends n to every subscriber of topic.
	BroadcastTopic(ctx context.Context, topic string, n Notification) error
}
