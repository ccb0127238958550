package commands

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrSyncCatalogCommandIsNotConstructed = errors.New(
	"SyncCatalogCommand must be created via NewSyncCatalogCommand constructor",
)

// SyncCatalogCommand represents a request to reconcile the registries with
// the order collection: every client and manufacturer name referenced by an
// order must be present in its registry.
type SyncCatalogCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSyncCatalogCommand creates a command to reconcile the registries.
func NewSyncCatalogCommand() (SyncCatalogCommand, error) {
	return SyncCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncCatalogCommandIsNotConstructed if validation fails.
func (c SyncCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSyncCatalogCommandIsNotConstructed)
}
