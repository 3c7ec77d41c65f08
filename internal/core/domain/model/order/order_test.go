package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func sampleItems() []order.Item {
	return []order.Item{
		order.NewItem("burger", kernel.MustMoney("10"), 2),
		order.NewItem("fries", kernel.MustMoney("5"), 1),
	}
}

func sampleBreakdown() order.Breakdown {
	return order.NewBreakdown(kernel.MustMoney("25"), decimal.Zero, kernel.ZeroMoney(), kernel.MustMoney("31"))
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), sampleItems(),
		kernel.MustMoney("4"), kernel.MustMoney("2"), "", sampleBreakdown(), placedAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	t.Run("should create placed order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, restaurantID, sampleItems(),
			kernel.MustMoney("4"), kernel.MustMoney("2"), "  save10 ", sampleBreakdown(), placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Nil(t, o.DriverID())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "4.00", o.DeliveryFee().String())
		assert.Equal(t, "2.00", o.Tip().String())
		assert.Equal(t, "SAVE10", o.CouponCode())
		assert.True(t, o.Breakdown().IsEqual(sampleBreakdown()))
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(id, customerID, restaurantID, nil,
			kernel.ZeroMoney(), kernel.ZeroMoney(), "", sampleBreakdown(), placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		var invalid kernel.UUID

		o, err := order.NewOrder(invalid, invalid, invalid, nil,
			kernel.ZeroMoney(), kernel.ZeroMoney(), "", sampleBreakdown(), placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "restaurantId")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should not share items slice with caller", func(t *testing.T) {
		items := sampleItems()
		o, err := order.NewOrder(id, customerID, restaurantID, items,
			kernel.ZeroMoney(), kernel.ZeroMoney(), "", sampleBreakdown(), placedAt)
		require.NoError(t, err)

		items[0] = order.NewItem("changed", kernel.MustMoney("99"), 9)

		assert.Equal(t, "burger", o.Items()[0].ItemID())
	})
}

func TestRestoreOrder(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("should restore stored status and driver", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driverID,
			sampleItems(), kernel.MustMoney("4"), kernel.ZeroMoney(), "", sampleBreakdown(), order.InRoute, placedAt)

		require.NoError(t, err)
		assert.Equal(t, order.InRoute, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("should reject unknown stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			sampleItems(), kernel.ZeroMoney(), kernel.ZeroMoney(), "", sampleBreakdown(), order.Unknown, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid driver", func(t *testing.T) {
		var invalid kernel.UUID

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &invalid,
			sampleItems(), kernel.ZeroMoney(), kernel.ZeroMoney(), "", sampleBreakdown(), order.Placed, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ApplyStatusDecision(t *testing.T) {
	at := placedAt.Add(10 * time.Minute)

	t.Run("should store next status and record event for transitions", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.ApplyStatusDecision(order.NewTransition(order.Processing, "Order status updated"), at)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.Processing, events[0].Status)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.True(t, events[0].CustomerID.IsEqual(o.CustomerID()))
		assert.True(t, events[0].RestaurantID.IsEqual(o.RestaurantID()))
		assert.NoError(t, events[0].EventID.Validate())
		assert.Equal(t, at, events[0].OccurredAt)
	})

	t.Run("should leave order untouched for unchanged and acknowledged decisions", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.ApplyStatusDecision(order.NewUnchanged(order.Placed, "Status unchanged"), at))
		require.NoError(t, o.ApplyStatusDecision(order.NewAcknowledgement(order.Delivered, "ack"), at))

		assert.Equal(t, order.Placed, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should refuse rejected decisions", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.ApplyStatusDecision(order.NewRejection(order.Conflict, "Status cannot move backwards"), at)

		require.ErrorIs(t, err, order.ErrDecisionIsRejected)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should refuse transition to a status that cannot be stored", func(t *testing.T) {
		o := newPlacedOrder(t)

		err := o.ApplyStatusDecision(order.NewTransition(order.Unknown, "x"), at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("should clear recorded events", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.ApplyStatusDecision(order.NewTransition(order.Canceled, "Order canceled"), at))

		o.ClearDomainEvents()

		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("should assign and reassign driver", func(t *testing.T) {
		o := newPlacedOrder(t)
		first, second := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, o.AssignDriver(first))
		require.NoError(t, o.AssignDriver(second))

		assert.True(t, o.DriverID().IsEqual(second))
	})

	t.Run("should carry driver into later events", func(t *testing.T) {
		o := newPlacedOrder(t)
		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(driverID))

		require.NoError(t, o.ApplyStatusDecision(order.NewTransition(order.InRoute, "Order status updated"), placedAt))

		require.NotNil(t, o.DomainEvents()[0].DriverID)
		assert.True(t, o.DomainEvents()[0].DriverID.IsEqual(driverID))
	})

	t.Run("should reject invalid driver id", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.Error(t, o.AssignDriver(kernel.UUID{}))
		assert.Nil(t, o.DriverID())
	})

	t.Run("should reject assignment to finished orders", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.ApplyStatusDecision(order.NewTransition(order.Canceled, "Order canceled"), placedAt))

		err := o.AssignDriver(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), order.ErrOrderIsFinished.Error())
	})
}
