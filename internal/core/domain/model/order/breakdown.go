package order

import (
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Breakdown is the pricing result attached to an order at placement. It is never
// recomputed.
type Breakdown struct {
	itemsTotal      kernel.Money
	discountPercent decimal.Decimal
	discountAmount  kernel.Money
	grandTotal      kernel.Money
}

func NewBreakdown(itemsTotal kernel.Money, discountPercent decimal.Decimal,
	discountAmount kernel.Money, grandTotal kernel.Money,
) Breakdown {
	return Breakdown{
		itemsTotal:      itemsTotal,
		discountPercent: discountPercent,
		discountAmount:  discountAmount,
		grandTotal:      grandTotal,
	}
}

func (b Breakdown) ItemsTotal() kernel.Money {
	return b.itemsTotal
}

func (b Breakdown) DiscountPercent() decimal.Decimal {
	return b.discountPercent
}

func (b Breakdown) DiscountAmount() kernel.Money {
	return b.discountAmount
}

func (b Breakdown) GrandTotal() kernel.Money {
	return b.grandTotal
}

func (b Breakdown) IsEqual(other Breakdown) bool {
	return b.itemsTotal.IsEqual(other.itemsTotal) &&
		b.discountPercent.Equal(other.discountPercent) &&
		b.discountAmount.IsEqual(other.discountAmount) &&
		b.grandTotal.IsEqual(other.grandTotal)
}
