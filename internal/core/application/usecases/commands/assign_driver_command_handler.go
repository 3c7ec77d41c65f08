package commands

import (
	"context"
)

// AssignDriverCommandHandler stores the driver of an order.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order, assigns the driver and saves it. Delivered and canceled
// orders refuse the assignment with errs.ErrValueIsInvalid.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
