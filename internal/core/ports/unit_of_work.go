package ports

import "context"

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation so that
// concurrent requests never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary over the repositories that require
// multi-statement consistency (vendor cascade deletion). The order update
// flow deliberately does not use it: its side effects are best-effort by
// contract.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling Begin on an instance
	// with an open transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes the transaction. Errors when none is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Errors when none is active.
	Rollback(ctx context.Context) error

	// VendorRepository returns a VendorRepository bound to the current
	// transaction.
	VendorRepository() VendorRepository
}
