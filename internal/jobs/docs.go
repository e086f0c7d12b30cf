// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the payment pipeline.
//
// # Available Jobs
//
// 1. PaymentSyncJob - Polls the payment gateway for unpaid orders with an active link and marks confirmed orders as paid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncPaymentsHandler, "@every 1m", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sync schedule is configured through PAYMENT_SYNC_SCHEDULE and accepts
// any standard cron expression or a descriptor such as "@every 1m".
//
// # Error Handling
//
// Batch-level failures are logged and retried on the next tick. Per-order
// gateway errors are handled inside the command handler so one stuck order
// never blocks the rest of the batch.
package jobs
