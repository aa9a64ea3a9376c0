// Package jobs provides scheduled background tasks for the ordering workflow.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field) and
// read-only: they report on the store and never move an order.
//
// # Available Jobs
//
// 1. OverdueOrderMonitorJob - logs, per vendor, orders still pending or
// accepted after their scheduled time
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, cfg.OverdueCron, kernel.SystemClock, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The monitor defaults to "0 * * * * *", once a minute. OVERDUE_CRON
// overrides it.
//
// # Error Handling
//
// A failed scan is logged and retried at the next tick.
package jobs
