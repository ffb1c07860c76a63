package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary across the order
// header and its line items. Client code must explicitly manage the
// transaction lifecycle. Order-number issuance must happen inside an active
// unit of work so that concurrent issuers are serialized and an abort
// releases the number together with any partial writes.
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
	// transaction.
	OrderRepository() OrderRepository

	// LineItemRepository returns a LineItemRepository bound to the current
	// transaction.
	LineItemRepository() LineItemRepository
}
