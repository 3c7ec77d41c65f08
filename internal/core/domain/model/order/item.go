package order

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Item is one order line. It is immutable and owned by its order.
type Item struct {
	itemID    string
	unitPrice kernel.Money
	quantity  int
}

// NewItem builds a line item. A negative quantity degrades to zero so that a malformed
// line contributes nothing to the total instead of failing the order.
func NewItem(itemID string, unitPrice kernel.Money, quantity int) Item {
	if quantity < 0 {
		quantity = 0
	}
	if !unitPrice.IsPositive() {
		unitPrice = kernel.ZeroMoney()
	}
	return Item{
		itemID:    strings.TrimSpace(itemID),
		unitPrice: unitPrice,
		quantity:  quantity,
	}
}

func (i Item) ItemID() string {
	return i.itemID
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal is unitPrice × quantity, unrounded.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

// CoerceQuantity turns loosely typed request input into a quantity. Absent, fractional,
// negative and unparseable values become 0.
func CoerceQuantity(v any) int {
	switch q := v.(type) {
	case nil:
		return 0
	case int:
		return max(q, 0)
	case int32:
		return max(int(q), 0)
	case int64:
		if q < 0 || q > math.MaxInt32 {
			return 0
		}
		return int(q)
	case float64:
		return quantityFromFloat(q)
	case float32:
		return quantityFromFloat(float64(q))
	case json.Number:
		return CoerceQuantity(string(q))
	case string:
		s := strings.TrimSpace(q)
		if n, err := strconv.Atoi(s); err == nil {
			return max(n, 0)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return quantityFromFloat(f)
		}
		return 0
	default:
		return 0
	}
}

func quantityFromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}
