// Package postgres implements the Unit of Work over GORM and hands out repositories
// bound to its transaction.
//
// Basic usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction, which the
// deferred call ignores.
//
// Orders saved through OrderRepository are tracked. On Commit their pending domain
// events are written to the outbox in the same transaction, so a status change and its
// notification are stored atomically.
package postgres

import (
	"context"
	"errors"

	"fooddelivery/internal/adapters/out/postgres/couponrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/adapters/out/postgres/settlementrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the tracked orders' domain events to the outbox and commits.
// If the outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushDomainEvents(ctx); err != nil {
		return errors.Join(err, uow.Rollback(ctx))
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CouponRepository() ports.CouponRepository {
	return couponrepo.NewGormCouponRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettlementRepository() ports.SettlementRepository {
	return settlementrepo.NewGormSettlementRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved by a repository of this unit of work.
// The same aggregate may be tracked more than once; its events are flushed once.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushDomainEvents(ctx context.Context) error {
	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)

	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}

		events := o.DomainEvents()
		if len(events) == 0 {
			continue
		}
		if err := outbox.Add(ctx, events...); err != nil {
			return err
		}
		o.ClearDomainEvents()
	}

	return nil
}
