package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler prices and stores a new order.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, services.NewPricingEngine(time.Now), time.Now)
//	breakdown, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order placed, grand total %s", breakdown.GrandTotal())
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	pricing    services.PricingEngine
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// A nil clock falls back to time.Now.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	pricing services.PricingEngine,
	now func() time.Time,
) PlaceOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		now:        now,
	}
}

// Handle looks up the coupon, computes the totals and stores the order in status Placed.
// An unknown coupon code is treated as no coupon; the order is still placed.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Breakdown, error) {
	if err := cmd.Validate(); err != nil {
		return order.Breakdown{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Breakdown{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := h.findCoupon(ctx, uow, cmd.CouponCode())
	if err != nil {
		return order.Breakdown{}, err
	}

	breakdown := h.pricing.ComputeTotals(cmd.Items(), cmd.DeliveryFee(), cmd.Tip(), c)

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Items(),
		cmd.DeliveryFee(),
		cmd.Tip(),
		cmd.CouponCode(),
		breakdown,
		h.now(),
	)
	if err != nil {
		return order.Breakdown{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return order.Breakdown{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Breakdown{}, err
	}

	return breakdown, nil
}

func (h PlaceOrderCommandHandler) findCoupon(ctx context.Context, uow PlaceOrderUoW, code string) (*coupon.Coupon, error) {
	if code == "" {
		return nil, nil //nolint:nilnil // no coupon requested
	}

	c, err := uow.CouponRepository().GetByCode(ctx, code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // unknown codes are ignored
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}
