package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its items and pricing breakdown.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one line of an order as it was placed.
type OrderItemView struct {
	ItemID    string
	UnitPrice kernel.Money
	Quantity  int
}

// GetOrderQueryResponse is the read model of a single order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	DriverID        *kernel.UUID
	Status          order.Status
	Items           []OrderItemView
	DeliveryFee     kernel.Money
	Tip             kernel.Money
	CouponCode      string
	ItemsTotal      kernel.Money
	DiscountPercent decimal.Decimal
	DiscountAmount  kernel.Money
	GrandTotal      kernel.Money
	PlacedAt        time.Time
}
