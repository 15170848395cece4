package commands

import (
	"context"
	"errors"

	"algexpress/internal/core/ports"
)

var (
	// ErrNoWaitingAssignment is returned when every delivery assignment
	// already has a courier.
	ErrNoWaitingAssignment = errors.New("no assignment is waiting for a courier")

	// ErrNoCourierAvailable is returned when the courier directory has
	// nobody free.
	ErrNoCourierAvailable = errors.New("no courier is available")
)

// AssignCourierCommandHandler matches a free courier to the oldest waiting
// delivery assignment. Run periodically by the courier assignment job.
type AssignCourierCommandHandler struct {
	uowFactory DeliveryUoWFactory
	directory  ports.CourierDirectory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(uowFactory DeliveryUoWFactory, directory ports.CourierDirectory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the courier assignment command.
// Returns ErrNoWaitingAssignment or ErrNoCourierAvailable when there is
// nothing to match; callers treat both as an idle tick.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	assignment, err := deliveryRepo.GetFirstWaiting(ctx)
	if err != nil {
		return errors.Join(ErrNoWaitingAssignment, err)
	}

	courierID, err := h.directory.GetAvailableCourier(ctx)
	if err != nil {
		return errors.Join(ErrNoCourierAvailable, err)
	}

	if err = assignment.AssignCourier(courierID); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
