package couponrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/coupon"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCouponRepository implements CouponRepository using GORM.
type GormCouponRepository struct {
	db *gorm.DB
}

func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// Add stores a new coupon. A duplicate code fails with coupon.ErrCodeIsTaken, which
// requires the connection to be opened with TranslateError.
func (r *GormCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c, time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", coupon.ErrCodeIsTaken, dto.Code)
		}
		return err
	}
	return nil
}

// GetByCode finds a coupon by code. The lookup normalizes the code the same way
// orders do, so " save10 " finds SAVE10.
func (r *GormCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized := order.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}
