package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// RelayOrderEventsCommandHandler drains the outbox. For every stored status change it
// mirrors the status to the realtime store, pushes the status-specific message to the
// customer and, when the order becomes Ready, broadcasts it to drivers.
//
// Delivery is at least once: an event is marked published only after all its side effects
// succeeded, so a failed event is retried whole on the next run.
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.NotificationPublisher
	mirror     ports.StatusMirror
	now        func() time.Time
}

// NewRelayOrderEventsCommandHandler creates the relay. A nil clock falls back to time.Now.
func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.NotificationPublisher,
	mirror ports.StatusMirror,
	now func() time.Time,
) RelayOrderEventsCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RelayOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		mirror:     mirror,
		now:        now,
	}
}

// Handle relays one batch and returns how many events were published. Failures of single
// events are joined into the returned error; the successful ones are still committed.
func (h RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()

	events, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	var (
		published int
		failures  []error
	)

	for _, event := range events {
		if err = h.deliver(ctx, event); err != nil {
			failures = append(failures, fmt.Errorf("event %s: %w", event.EventID, err))
			continue
		}

		if err = outbox.MarkPublished(ctx, event.EventID, h.now()); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return published, errors.Join(failures...)
}

func (h RelayOrderEventsCommandHandler) deliver(ctx context.Context, event order.StatusChanged) error {
	if err := h.mirror.Mirror(ctx, event); err != nil {
		return fmt.Errorf("mirror status: %w", err)
	}

	n, ok := CustomerNotification(event)
	if !ok {
		return nil
	}

	if BroadcastsToDrivers(event.Status) {
		if err := h.publisher.BroadcastTopic(ctx, DriversTopic, n); err != nil {
			return fmt.Errorf("broadcast to %s: %w", DriversTopic, err)
		}
	}

	if err := h.publisher.NotifyCustomer(ctx, n); err != nil {
		return fmt.Errorf("notify customer: %w", err)
	}

	return nil
}
