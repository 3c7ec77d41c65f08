package kernel

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every monetary boundary rounds to.
const moneyScale = 2

var hundred = decimal.NewFromInt(100)

// Money is a decimal amount in the platform currency. Arithmetic never rounds on its
// own; callers decide where a computation boundary is and call Round2 there.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a non-negative decimal amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid; it panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// CoerceMoney converts loosely typed input (decoded JSON, database values) into Money.
// Absent, malformed, non-finite and negative values all become zero.
func CoerceMoney(v any) Money {
	var amount decimal.Decimal

	switch val := v.(type) {
	case nil:
		return ZeroMoney()
	case Money:
		amount = val.amount
	case decimal.Decimal:
		amount = val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ZeroMoney()
		}
		amount = decimal.NewFromFloat(val)
	case float32:
		return CoerceMoney(float64(val))
	case int:
		amount = decimal.NewFromInt(int64(val))
	case int64:
		amount = decimal.NewFromInt(val)
	case int32:
		amount = decimal.NewFromInt32(val)
	case json.Number:
		return CoerceMoney(string(val))
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return ZeroMoney()
		}
		amount = parsed
	default:
		return ZeroMoney()
	}

	if amount.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: amount}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times multiplies by a line-item quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns percent/100 of the amount, unrounded.
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{amount: percent.Div(hundred).Mul(m.amount)}
}

// Round2 rounds half away from zero to two fractional digits.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(moneyScale)}
}

// Min returns the smaller of the two amounts.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares by value, so 2.5 equals 2.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
