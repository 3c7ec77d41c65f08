package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order is placed without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrDecisionIsRejected is returned when a rejected decision is applied to an order.
	ErrDecisionIsRejected = errors.New("rejected decision cannot be applied")

	// ErrOrderIsFinished is returned when a driver is assigned to a delivered or canceled order.
	ErrOrderIsFinished = errors.New("order is already delivered or canceled")
)

// Order is the aggregate root of a customer's order. It owns its line items and the
// pricing breakdown computed at placement.
//
// Order follows these invariants:
//   - Identifiers of the order, customer and restaurant are valid
//   - At least one line item is present
//   - The breakdown never changes after placement
//   - Status is a member of the forward sequence or Canceled
//   - Status changes only through ApplyStatusDecision
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// driverID is nil until a driver picks the order up
	driverID *kernel.UUID

	items       []Item
	deliveryFee kernel.Money
	tip         kernel.Money

	// couponCode is the normalized code the customer entered, empty if none
	couponCode string
	breakdown  Breakdown

	status   Status
	placedAt time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder places a new order in status Placed.
//
// Example:
//
//	item := order.NewItem("burger", kernel.MustMoney("10"), 2)
//	breakdown := pricing.ComputeTotals(lines, fee, tip, coupon)
//	o, err := order.NewOrder(id, customerID, restaurantID, []order.Item{item},
//	    fee, tip, "SAVE10", breakdown, time.Now())
//
// The breakdown is supplied by the caller so that pricing stays outside the aggregate.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryFee kernel.Money,
	tip kernel.Money,
	couponCode string,
	breakdown Breakdown,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		deliveryFee:   deliveryFee,
		tip:           tip,
		couponCode:    NormalizeCouponCode(couponCode),
		breakdown:     breakdown,
		status:        Placed,
		placedAt:      placedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Unlike NewOrder it accepts any
// persisted status and an assigned driver.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	deliveryFee kernel.Money,
	tip kernel.Money,
	couponCode string,
	breakdown Breakdown,
	status Status,
	placedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items, deliveryFee, tip, couponCode, breakdown, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		o.driverID = &d
	}

	return o, nil
}

// NormalizeCouponCode trims and upper-cases a coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DriverID returns nil while no driver is assigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) Tip() kernel.Money {
	return o.tip
}

func (o *Order) CouponCode() string {
	return o.couponCode
}

func (o *Order) Breakdown() Breakdown {
	return o.breakdown
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// IsOwnedBy reports whether customerID placed the order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// ApplyStatusDecision writes the decision's next status when the decision asks for it and
// records a StatusChanged event. Unchanged and Acknowledged decisions leave the order
// untouched.
//
// Returns:
//   - nil when the decision was applied or required nothing
//   - ErrDecisionIsRejected for a rejected decision
//   - a validation error if the decision carries a status that cannot be stored
func (o *Order) ApplyStatusDecision(decision Decision, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !decision.OK() {
		return ErrDecisionIsRejected
	}
	if !decision.PersistChange() {
		return nil
	}

	next := decision.Next()
	if err := next.Validate(); err != nil {
		return err
	}

	o.status = next
	o.raise(at)
	return nil
}

// AssignDriver records the driver that delivers the order. Reassignment is allowed until
// the order is delivered or canceled.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %s", ErrOrderIsFinished, o.status))
	}

	o.driverID = &driverID
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	out := make([]StatusChanged, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(at time.Time) {
	var driverID *kernel.UUID
	if o.driverID != nil {
		d := *o.driverID
		driverID = &d
	}

	o.events = append(o.events, StatusChanged{
		EventID:      kernel.NewUUID(),
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		DriverID:     driverID,
		Status:       o.status,
		OccurredAt:   at.UTC(),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
