// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RequestExpiryJob - Runs every minute and cancels orders that stayed
// Requested longer than ORDER_REQUEST_TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, config.OrderRequestTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 * * * * *" (second zero of every
// minute). A zero TTL disables it.
//
// # Error Handling
//
// - Orders that left Requested before they could be cancelled are skipped
// - Any other failure is logged and the next run tries again
package jobs
