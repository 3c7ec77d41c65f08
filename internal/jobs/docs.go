// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-enabled schedules).
//
// # Available Jobs
//
// OrderEventsRelayJob runs every second. It takes a batch of order status events from
// the outbox, mirrors each one to the realtime store, pushes the customer notification
// and, for orders that became Ready, the driver broadcast. Events are marked published
// only after every side effect succeeded, so a failed event is retried on the next run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxBatchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay failures are logged and left for the next run. A batch size below one makes
// StartAll fail.
package jobs
