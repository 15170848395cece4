package jobs

import (
	"context"
	"log/slog"
	"time"

	"algexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentExpiryJob manages the scheduled cancellation of stale pending
// payments. Runs every minute so abandoned checkout attempts do not hold an
// order's settlement open indefinitely.
type PaymentExpiryJob struct {
	handler commands.ExpirePaymentsCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentExpiryJob creates a new job for expiring pending payments.
// Payments recorded more than maxAge ago are cancelled on each tick.
func NewPaymentExpiryJob(
	handler commands.ExpirePaymentsCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_expiry_job"),
	}
}

// Start begins the payment expiry job to run every minute.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpirePaymentsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiry job started (running every minute)")
	return nil
}

// Stop stops the payment expiry job.
func (j *PaymentExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment expiry job stopped")
}
