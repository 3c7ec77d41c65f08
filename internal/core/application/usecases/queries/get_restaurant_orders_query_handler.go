package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists orders of a restaurant, newest first.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]RestaurantOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			customer_id,
			driver_id,
			status,
			grand_total,
			placed_at
		FROM orders
		WHERE restaurant_id = ?`
	args := []any{query.RestaurantID().Raw()}

	if status, ok := query.Status(); ok {
		stmt += ` AND status = ?`
		args = append(args, int(status))
	}
	stmt += ` ORDER BY placed_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]RestaurantOrderView, 0)
	for rows.Next() {
		var (
			view           RestaurantOrderView
			id, customerID uuid.UUID
			driverID       uuid.NullUUID
			status         int
			grandTotal     decimal.Decimal
			placedAt       time.Time
		)

		if err = rows.Scan(&id, &customerID, &driverID, &status, &grandTotal, &placedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.DriverID, err = nullableID(driverID); err != nil {
			return nil, err
		}
		view.Status = order.Status(status)
		view.GrandTotal = kernel.CoerceMoney(grandTotal)
		view.PlacedAt = placedAt.UTC()

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
