package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery lists a restaurant's orders, optionally only those in one status.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID

	// status is Unknown when no filter was requested
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery builds the query. status may be empty, a display name or
// any synonym the status engine accepts, e.g. "preparing" or "out_for_delivery".
// "received" is an action, not a stored status, and is rejected like any unknown value.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID, status string) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	q := GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(status) == "" {
		return q, nil
	}

	q.status = order.ParseStatus(status)
	if q.status == order.Unknown {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("unsupported status %q", status))
	}
	return q, nil
}

func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Status returns the filter and whether one was requested.
func (q GetRestaurantOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}

// RestaurantOrderView summarizes one order on the restaurant dashboard.
type RestaurantOrderView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	Status     order.Status
	GrandTotal kernel.Money
	PlacedAt   time.Time
}
