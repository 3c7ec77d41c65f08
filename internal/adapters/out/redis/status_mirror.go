// Package redis mirrors order status changes into Redis for the live dashboards of
// restaurants, customers and drivers.
//
// Each status change overwrites three hashes and announces the change on a channel
// named like the hash, so dashboards can either poll or subscribe:
//
//	restaurant:<restaurantID>  update_type=restaurant order_id=<id> status=<status>
//	customer:<customerID>      order_id=<id> status=<status>
//	drivers                    order_id=<id>   (only when the order awaits pick-up)
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const (
	DriversKey = "drivers"

	restaurantUpdateType = "restaurant"
)

func RestaurantKey(restaurantID string) string {
	return "restaurant:" + restaurantID
}

func CustomerKey(customerID string) string {
	return "customer:" + customerID
}

// StatusMirror implements ports.StatusMirror.
type StatusMirror struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewStatusMirror returns a mirror writing through client. Entries expire after ttl;
// zero keeps them forever.
func NewStatusMirror(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *StatusMirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusMirror{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "StatusMirror"),
	}
}

// Mirror writes all keys of one event in a single MULTI/EXEC.
func (m *StatusMirror) Mirror(ctx context.Context, event order.StatusChanged) error {
	orderID := event.OrderID.String()
	status := event.Status.String()
	restaurantKey := RestaurantKey(event.RestaurantID.String())
	customerKey := CustomerKey(event.CustomerID.String())

	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, restaurantKey,
			"update_type", restaurantUpdateType,
			"order_id", orderID,
			"status", status,
		)
		pipe.HSet(ctx, customerKey,
			"order_id", orderID,
			"status", status,
		)
		pipe.Publish(ctx, restaurantKey, orderID)
		pipe.Publish(ctx, customerKey, orderID)

		if event.Status == order.Ready {
			pipe.HSet(ctx, DriversKey, "order_id", orderID)
			pipe.Publish(ctx, DriversKey, orderID)
		}

		if m.ttl > 0 {
			pipe.Expire(ctx, restaurantKey, m.ttl)
			pipe.Expire(ctx, customerKey, m.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mirror order %s: %w", orderID, err)
	}

	m.logger.DebugContext(ctx, "status mirrored", "order_id", orderID, "status", status)
	return nil
}
