// Package jobs provides scheduled background tasks for the food ordering
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the request path never triggers.
//
// # Available Jobs
//
// 1. CartCleanupJob - Periodically empties carts that have not been touched
// for longer than the configured retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(clearStaleCartsHandler, schedule, maxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The cleanup job logs failures and carries on; a failed run leaves stale
// carts for the next run to pick up.
package jobs
