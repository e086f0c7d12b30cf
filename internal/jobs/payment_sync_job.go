package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentSyncJob manages the scheduled reconciliation of payment statuses.
// Polls the payment gateway for every unpaid order with an active link and
// marks confirmed orders as paid.
type PaymentSyncJob struct {
	handler  commands.SyncPaymentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentSyncJob creates a new job for syncing payments on the given cron
// schedule. Uses SyncPaymentsCommandHandler to process the batch.
func NewPaymentSyncJob(handler commands.SyncPaymentsCommandHandler, schedule string, logger *slog.Logger) *PaymentSyncJob {
	return &PaymentSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "payment_sync_job"),
	}
}

// Start begins the payment sync job on its configured schedule.
func (j *PaymentSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncPaymentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment sync job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the payment sync job.
func (j *PaymentSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment sync job stopped")
}
