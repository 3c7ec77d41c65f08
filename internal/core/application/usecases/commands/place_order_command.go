package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// PlaceOrderCommand represents a customer's request to place an order.
// Line items arrive already coerced: malformed prices and quantities are zero, not errors.
//
// Example:
//
//	items := []order.Item{order.NewItem("burger", kernel.MustMoney("10"), 2)}
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID,
//	    items, kernel.MustMoney("4"), kernel.MustMoney("2"), " save10 ")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []order.Item
	deliveryFee  kernel.Money
	tip          kernel.Money
	couponCode   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates identifiers and requires at least one item.
// The coupon code is trimmed and upper-cased; an empty code means no coupon.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []order.Item,
	deliveryFee kernel.Money,
	tip kernel.Money,
	couponCode string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryFee: deliveryFee,
		tip:         tip,
		couponCode:  order.NormalizeCouponCode(couponCode),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns a copy of the line items.
func (c PlaceOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c PlaceOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c PlaceOrderCommand) Tip() kernel.Money {
	return c.tip
}

// CouponCode returns the normalized coupon code, empty when none was given.
func (c PlaceOrderCommand) CouponCode() string {
	return c.couponCode
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
