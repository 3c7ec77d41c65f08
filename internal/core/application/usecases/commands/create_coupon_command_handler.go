package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/coupon"
)

// CreateCouponCommandHandler stores new coupons.
type CreateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

func NewCreateCouponCommandHandler(uowFactory CouponUoWFactory) CreateCouponCommandHandler {
	return CreateCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCouponCommandHandler) Handle(ctx context.Context, cmd CreateCouponCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := coupon.NewCoupon(cmd.Code(), cmd.PercentOff(), cmd.Active(), cmd.ExpiresAt(), cmd.MaxDiscount())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CouponRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
