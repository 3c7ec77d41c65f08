// Package couponrepo persists promotional coupons.
package couponrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CouponDTO is the row of the coupons table. A zero MaxDiscount means no cap.
type CouponDTO struct {
	Code        string          `gorm:"type:varchar(64);primaryKey"`
	PercentOff  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Active      bool            `gorm:"not null"`
	ExpiresAt   *time.Time
	MaxDiscount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (CouponDTO) TableName() string {
	return "coupons"
}

func fromDomain(c *coupon.Coupon, now time.Time) CouponDTO {
	return CouponDTO{
		Code:        c.Code(),
		PercentOff:  c.PercentOff(),
		Active:      c.IsActive(),
		ExpiresAt:   c.ExpiresAt(),
		MaxDiscount: c.MaxDiscount().Decimal(),
		CreatedAt:   now,
	}
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	maxDiscount, err := kernel.NewMoney(dto.MaxDiscount)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(dto.Code, dto.PercentOff, dto.Active, dto.ExpiresAt, maxDiscount)
}
