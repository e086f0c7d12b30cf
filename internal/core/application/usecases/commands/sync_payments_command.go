package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrSyncPaymentsCommandIsNotConstructed = errors.New(
	"SyncPaymentsCommand must be created via NewSyncPaymentsCommand constructor",
)

// SyncPaymentsCommand triggers reconciliation of pending payments against the
// gateway. This is a parameterless batch command: every unpaid order holding
// an unexpired payment link is checked.
//
// Example:
//
//	cmd := NewSyncPaymentsCommand()
//	handler := NewSyncPaymentsCommandHandler(uowFactory, gateway, markPaid, logger)
//
//	// Run periodically from the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("payment sync failed: %v", err)
//	}
type SyncPaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncPaymentsCommand creates a command to reconcile pending payments.
func NewSyncPaymentsCommand() SyncPaymentsCommand {
	return SyncPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SyncPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrSyncPaymentsCommandIsNotConstructed)
}
