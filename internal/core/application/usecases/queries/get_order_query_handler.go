package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order details straight from the tables, bypassing the
// aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		resp                                       GetOrderQueryResponse
		id, customerID, restaurantID               uuid.UUID
		driverID                                   uuid.NullUUID
		fee, tip, itemsTotal, discount, grandTotal decimal.Decimal
		status                                     int
		placedAt                                   time.Time
	)

	err := db.Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			driver_id,
			delivery_fee,
			tip,
			coupon_code,
			items_total,
			discount_percent,
			discount_amount,
			grand_total,
			status,
			placed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Raw()).Row().Scan(
		&id,
		&customerID,
		&restaurantID,
		&driverID,
		&fee,
		&tip,
		&resp.CouponCode,
		&itemsTotal,
		&resp.DiscountPercent,
		&discount,
		&grandTotal,
		&status,
		&placedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DriverID, err = nullableID(driverID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(status)
	resp.DeliveryFee = kernel.CoerceMoney(fee)
	resp.Tip = kernel.CoerceMoney(tip)
	resp.ItemsTotal = kernel.CoerceMoney(itemsTotal)
	resp.DiscountAmount = kernel.CoerceMoney(discount)
	resp.GrandTotal = kernel.CoerceMoney(grandTotal)
	resp.PlacedAt = placedAt.UTC()

	if resp.Items, err = h.items(db, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT item_id, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item  OrderItemView
			price decimal.Decimal
		)
		if err = rows.Scan(&item.ItemID, &price, &item.Quantity); err != nil {
			return nil, err
		}
		item.UnitPrice = kernel.CoerceMoney(price)
		items = append(items, item)
	}

	return items, rows.Err()
}

func nullableID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	out, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &out, nil
}
