package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// PricingEngine computes the pricing breakdown of an order.
//
// Every intermediate amount is rounded to cents before it is combined with the next one:
//
//	itemsTotal = round2(Σ unitPrice × quantity)
//	discount   = min(round2(percentOff/100 × itemsTotal), maxDiscount)   // cap only when maxDiscount > 0
//	subtotal   = round2(itemsTotal − discount)
//	grandTotal = round2(subtotal + deliveryFee + tip)
//
// Rounding only the final sum would differ in the last cent for some inputs, so the order of
// these steps must not change.
//
// Example usage:
//
//	engine := services.NewPricingEngine(time.Now)
//	b := engine.ComputeTotals(items, kernel.MustMoney("4"), kernel.MustMoney("2"), nil)
//	// b.ItemsTotal() == 25, b.GrandTotal() == 31 for items [{10,2},{5,1}]
type PricingEngine struct {
	now func() time.Time
}

// NewPricingEngine creates an engine that checks coupon expiry against now.
// A nil clock falls back to time.Now.
func NewPricingEngine(now func() time.Time) PricingEngine {
	if now == nil {
		now = time.Now
	}
	return PricingEngine{now: now}
}

// ComputeTotals prices items with the delivery fee, the tip and an optional coupon.
// An absent, inactive or expired coupon yields no discount. The coupon is only read.
func (e PricingEngine) ComputeTotals(
	items []order.Item,
	deliveryFee kernel.Money,
	tip kernel.Money,
	c *coupon.Coupon,
) order.Breakdown {
	itemsTotal := kernel.ZeroMoney()
	for _, item := range items {
		itemsTotal = itemsTotal.Add(item.LineTotal())
	}
	itemsTotal = itemsTotal.Round2()

	discountPercent := decimal.Zero
	discountAmount := kernel.ZeroMoney()

	if c.IsValidAt(e.clock()) {
		discountPercent = c.PercentOff()
		discountAmount = itemsTotal.Percent(discountPercent).Round2()
		if c.IsCapped() {
			discountAmount = discountAmount.Min(c.MaxDiscount())
		}
	}

	subtotal := itemsTotal.Sub(discountAmount).Round2()
	grandTotal := subtotal.Add(nonNegative(deliveryFee)).Add(nonNegative(tip)).Round2()

	return order.NewBreakdown(itemsTotal, discountPercent, discountAmount, grandTotal)
}

func (e PricingEngine) clock() time.Time {
	if e.now == nil {
		return time.Now()
	}
	return e.now()
}

func nonNegative(m kernel.Money) kernel.Money {
	if m.Decimal().IsNegative() {
		return kernel.ZeroMoney()
	}
	return m
}
