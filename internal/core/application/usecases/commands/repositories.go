// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CouponRepoFactory provides access to the coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// SettlementRepoFactory provides access to settlement bookkeeping within a transaction.
	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	// OutboxRepoFactory provides access to the event outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW reads coupons and stores new orders.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		CouponRepoFactory
	}

	// PlaceOrderUoWFactory creates new order placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// StatusUoW changes order status and books settlement in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... decide and apply
	//   err = uow.SettlementRepository().ApplyDelivery(ctx, o)
	//
	//   err = uow.Commit(ctx)
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		SettlementRepoFactory
	}

	// StatusUoWFactory creates new status change unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// CouponUoW manages transactions for coupon-only operations.
	CouponUoW interface {
		TxManager
		CouponRepoFactory
	}

	// CouponUoWFactory creates new coupon unit of work instances.
	CouponUoWFactory interface {
		Create() CouponUoW
	}

	// OutboxUoW manages transactions for the event relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
