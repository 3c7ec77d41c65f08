package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/coupon"
)

// CouponRepository stores promotional coupons.
type CouponRepository interface {
	// Add stores a new coupon. Codes are unique.
	Add(ctx context.Context, c *coupon.Coupon) error

	// GetByCode looks a coupon up by its normalized code.
	// Returns errs.ObjectNotFoundError when no coupon has the code.
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}
