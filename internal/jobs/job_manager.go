package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderEventsRelayJob *OrderEventsRelayJob
}

// NewJobManager wires the jobs to their handlers.
func NewJobManager(
	relayer OrderEventsRelayer,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderEventsRelayJob: NewOrderEventsRelayJob(relayer, outboxBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderEventsRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start order events relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to return.
func (jm *JobManager) StopAll() {
	jm.orderEventsRelayJob.Stop()
}
