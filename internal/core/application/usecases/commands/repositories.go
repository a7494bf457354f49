// Package commands contains the write operations of the application core.
// Each operation is a command object (constructor-guarded, validated) paired
// with a handler that owns its side-effect sequencing.
package commands

import (
	"context"

	"rentalhub/internal/core/ports"
)

// Unit of Work interfaces for the commands that need multi-statement
// transactions. The order update flow is deliberately outside these: its
// side effects are best-effort by contract and use plain repositories.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// VendorRepoFactory provides the vendor repository bound to the
	// current transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// VendorUoW manages transactions for vendor cleanup operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}
)
