package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository instances bound to the
// transaction. Client code must explicitly manage the transaction lifecycle:
// every logical operation opens one unit of work, commits on success, and
// rolls back on any raised error — including errors from external gateway
// calls made mid-transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin().
	OrderRepository() OrderRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction started by Begin().
	CustomerRepository() CustomerRepository
}
