package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is an actor's request to move an order to another status.
// The requested status is kept verbatim: an empty or unknown value is not a command
// error but a rejected decision, reported with its own code and message.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, ownerID, order.RoleRestaurantOwner, "preparing")
//	if err != nil {
//	    return err
//	}
//	decision, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	role            order.Role
	requestedStatus string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role order.Role,
	requestedStatus string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		role:            role,
		requestedStatus: requestedStatus,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ChangeOrderStatusCommand) Role() order.Role {
	return c.role
}

func (c ChangeOrderStatusCommand) RequestedStatus() string {
	return c.requestedStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actorId", err)
	}
	c.actorID = id
	return nil
}
