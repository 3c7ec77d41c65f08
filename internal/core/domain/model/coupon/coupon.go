package coupon

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCouponIsNotConstructed is returned when a Coupon instance was not created through NewCoupon.
	ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

	// ErrCodeIsTaken is returned when a coupon is stored under a code that already exists.
	ErrCodeIsTaken = errors.New("coupon code is already in use")

	maxPercentOff = decimal.NewFromInt(100)
)

// Coupon grants percentOff percent off the items total, optionally capped by maxDiscount.
//
// Coupon follows these invariants:
//   - Code is non-empty, trimmed and upper-cased
//   - PercentOff lies in [0, 100]
//   - MaxDiscount is non-negative; zero means uncapped
type Coupon struct {
	code        string
	percentOff  decimal.Decimal
	active      bool
	expiresAt   *time.Time
	maxDiscount kernel.Money

	isConstructed bool
}

// NewCoupon creates a validated coupon. A nil expiresAt means the coupon never expires.
func NewCoupon(
	code string,
	percentOff decimal.Decimal,
	active bool,
	expiresAt *time.Time,
	maxDiscount kernel.Money,
) (*Coupon, error) {
	c := &Coupon{
		active:        active,
		isConstructed: true,
	}

	if expiresAt != nil {
		exp := expiresAt.UTC()
		c.expiresAt = &exp
	}

	if err := errors.Join(
		c.setCode(code),
		c.setPercentOff(percentOff),
		c.setMaxDiscount(maxDiscount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Coupon) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCouponIsNotConstructed
	}
	return nil
}

func (c *Coupon) Code() string {
	return c.code
}

func (c *Coupon) PercentOff() decimal.Decimal {
	return c.percentOff
}

func (c *Coupon) IsActive() bool {
	return c.active
}

// ExpiresAt returns nil for coupons without an expiry.
func (c *Coupon) ExpiresAt() *time.Time {
	if c.expiresAt == nil {
		return nil
	}
	exp := *c.expiresAt
	return &exp
}

// MaxDiscount returns the discount cap; zero means uncapped.
func (c *Coupon) MaxDiscount() kernel.Money {
	return c.maxDiscount
}

// IsCapped reports whether the discount is limited by MaxDiscount.
func (c *Coupon) IsCapped() bool {
	return c.maxDiscount.IsPositive()
}

// IsValidAt reports whether the coupon applies at now: it must be active, not yet
// expired and grant a positive percentage. A nil coupon is never valid.
func (c *Coupon) IsValidAt(now time.Time) bool {
	if c.Validate() != nil {
		return false
	}
	if !c.active {
		return false
	}
	if c.expiresAt != nil && !c.expiresAt.After(now) {
		return false
	}
	return c.percentOff.IsPositive()
}

func (c *Coupon) setCode(code string) error {
	normalized := order.NormalizeCouponCode(code)
	if normalized == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = normalized
	return nil
}

func (c *Coupon) setPercentOff(percentOff decimal.Decimal) error {
	if percentOff.IsNegative() || percentOff.GreaterThan(maxPercentOff) {
		return errs.NewValueIsOutOfRangeError("percentOff", percentOff, 0, 100)
	}
	c.percentOff = percentOff
	return nil
}

func (c *Coupon) setMaxDiscount(maxDiscount kernel.Money) error {
	if maxDiscount.Decimal().IsNegative() {
		return errs.NewValueIsOutOfRangeError("maxDiscount", maxDiscount, 0, "unbounded")
	}
	c.maxDiscount = maxDiscount
	return nil
}
