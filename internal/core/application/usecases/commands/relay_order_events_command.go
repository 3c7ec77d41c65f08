package commands

import (
	"errors"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	DefaultRelayBatchSize = 100
	maxRelayBatchSize     = 1000
)

var ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
	"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
)

// RelayOrderEventsCommand delivers up to BatchSize pending status change events to the
// dashboard mirror and the push notification service.
//
// Example:
//
//	cmd, _ := NewRelayOrderEventsCommand(100)
//	handler := NewRelayOrderEventsCommandHandler(uowFactory, publisher, mirror, time.Now)
//
//	// Run periodically; undelivered events stay in the outbox for the next run
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//	    if _, err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Relay failed: %v", err)
//	    }
//	}
type RelayOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOrderEventsCommand accepts a batch size in [1, 1000]. Zero selects DefaultRelayBatchSize.
func NewRelayOrderEventsCommand(batchSize int) (RelayOrderEventsCommand, error) {
	cmd := RelayOrderEventsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayOrderEventsCommand{}, err
	}

	return cmd, nil
}

func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayOrderEventsCommand) setBatchSize(batchSize int) error {
	if batchSize == 0 {
		batchSize = DefaultRelayBatchSize
	}
	if batchSize < 1 || batchSize > maxRelayBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxRelayBatchSize)
	}
	c.batchSize = batchSize
	return nil
}
