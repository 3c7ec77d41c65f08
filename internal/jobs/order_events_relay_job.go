package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayRunTimeout bounds a single relay run so a stuck broker cannot hold outbox row locks.
const relayRunTimeout = 30 * time.Second

// OrderEventsRelayer publishes one batch of stored order events.
type OrderEventsRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OrderEventsRelayJob drains the order events outbox every second. A run that is still
// going when the next one is due makes the next one skip.
type OrderEventsRelayJob struct {
	relayer   OrderEventsRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrderEventsRelayJob(relayer OrderEventsRelayer, batchSize int, logger *slog.Logger) *OrderEventsRelayJob {
	return &OrderEventsRelayJob{
		relayer:   relayer,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "order_events_relay_job"),
	}
}

// Start schedules the relay. An invalid batch size fails here rather than on every run.
func (j *OrderEventsRelayJob) Start() error {
	cmd, err := commands.NewRelayOrderEventsCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("* * * * * *", func() {
		j.run(cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order events relay job started (running every second)",
		"batch_size", j.batchSize)
	return nil
}

// Stop unschedules the relay and waits for a running batch to finish.
func (j *OrderEventsRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order events relay job stopped")
}

func (j *OrderEventsRelayJob) run(cmd commands.RelayOrderEventsCommand) {
	ctx, cancel := context.WithTimeout(context.Background(), relayRunTimeout)
	defer cancel()

	published, err := j.relayer.Handle(ctx, cmd)
	if published > 0 {
		j.logger.DebugContext(ctx, "Order events published", "count", published)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Order events relay failed", "error", err)
	}
}
