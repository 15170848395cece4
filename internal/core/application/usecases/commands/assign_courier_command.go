package commands

import (
	"errors"

	"algexpress/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand triggers the assignment of an available courier to the
// oldest delivery assignment still waiting for one.
//
// Example:
//
//	cmd := NewAssignCourierCommand()
//	handler := NewAssignCourierCommandHandler(uowFactory, directory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No waiting assignments or no free couriers: %v", err)
//	}
type AssignCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a new command to trigger courier assignment.
// This is a parameterless command; the waiting assignment is picked inside
// the handler.
func NewAssignCourierCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCourierCommandIsNotConstructed,
	)
}
