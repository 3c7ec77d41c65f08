package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateCouponCommandIsNotConstructed = errors.New(
	"CreateCouponCommand must be created via NewCreateCouponCommand constructor",
)

// CreateCouponCommand registers a promotional coupon. Range checks on the percentage
// and the cap are left to coupon.NewCoupon.
type CreateCouponCommand struct { //nolint:recvcheck //using for validation
	code        string
	percentOff  decimal.Decimal
	active      bool
	expiresAt   *time.Time
	maxDiscount kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateCouponCommand(
	code string,
	percentOff decimal.Decimal,
	active bool,
	expiresAt *time.Time,
	maxDiscount kernel.Money,
) (CreateCouponCommand, error) {
	cmd := CreateCouponCommand{
		percentOff:  percentOff,
		active:      active,
		expiresAt:   expiresAt,
		maxDiscount: maxDiscount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return CreateCouponCommand{}, err
	}

	return cmd, nil
}

func (c CreateCouponCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouponCommandIsNotConstructed)
}

func (c CreateCouponCommand) Code() string {
	return c.code
}

func (c CreateCouponCommand) PercentOff() decimal.Decimal {
	return c.percentOff
}

func (c CreateCouponCommand) Active() bool {
	return c.active
}

func (c CreateCouponCommand) ExpiresAt() *time.Time {
	return c.expiresAt
}

func (c CreateCouponCommand) MaxDiscount() kernel.Money {
	return c.maxDiscount
}

func (c *CreateCouponCommand) setCode(code string) error {
	normalized := order.NormalizeCouponCode(code)
	if normalized == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = normalized
	return nil
}
