package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand records which driver picked an order up. The driver is credited
// with the delivery fee once the order is delivered.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDriverCommand(orderID kernel.UUID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}
