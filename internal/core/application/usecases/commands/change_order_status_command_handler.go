package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
)

const msgNotOrderOwner = "You are not allowed to update this order."

// ChangeOrderStatusCommandHandler applies the status engine's decision to a stored order.
//
// The order row is locked for the whole transaction, so two concurrent requests for the
// same order are decided one after the other against the latest stored status.
// Delivery settlement is booked in the same transaction as the Delivered status.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, services.NewStatusEngine(), time.Now)
//	decision, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // storage failure or unknown order
//	}
//	respond(decision.Code(), decision.Message())
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	engine     services.StatusEngine
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates the handler. A nil clock falls back to time.Now.
func NewChangeOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	engine services.StatusEngine,
	now func() time.Time,
) ChangeOrderStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		now:        now,
	}
}

// Handle returns the decision for the request. Rejected, unchanged and acknowledged
// decisions leave storage untouched. An error is returned only for command validation
// and storage failures, including errs.ErrObjectNotFound for unknown orders.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Decision, error) {
	if err := cmd.Validate(); err != nil {
		return order.Decision{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Decision{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Decision{}, err
	}

	if cmd.Role() == order.RoleCustomer && !o.IsOwnedBy(cmd.ActorID()) {
		return order.NewRejection(order.Forbidden, msgNotOrderOwner), nil
	}

	decision := h.engine.Decide(o.Status(), cmd.RequestedStatus(), cmd.Role())
	if !decision.PersistChange() {
		return decision, nil
	}

	if err = o.ApplyStatusDecision(decision, h.now()); err != nil {
		return order.Decision{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Decision{}, err
	}

	if decision.Next() == order.Delivered {
		if err = uow.SettlementRepository().ApplyDelivery(ctx, o); err != nil {
			return order.Decision{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Decision{}, err
	}

	return decision, nil
}
