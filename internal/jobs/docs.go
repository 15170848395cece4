// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Runs every five seconds to match waiting delivery assignments with free couriers
// 2. PaymentExpiryJob - Runs every minute to cancel pending payments older than the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignCourierHandler, expirePaymentsHandler, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no waiting assignment, no free courier)
// - Payment expiry job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
