package jobs

import (
	"context"
	"errors"
	"log/slog"

	"algexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob manages the scheduled dispatch of couriers to waiting
// delivery assignments. Runs every five seconds to match the oldest waiting
// assignment with a free courier.
type CourierAssignmentJob struct {
	handler commands.AssignCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates a new job for assigning couriers.
// Uses AssignCourierCommandHandler to process one waiting assignment per tick.
func NewCourierAssignmentJob(handler commands.AssignCourierCommandHandler, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Start begins the courier assignment job to run every five seconds.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignCourierCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoWaitingAssignment) && !errors.Is(err, commands.ErrNoCourierAvailable) {
				j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started (running every five seconds)")
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
