package commands

import (
	"context"
)

// RemoveCatalogEntryCommandHandler handles the business logic for deleting a
// name from the client or manufacturer registry. The deletion never cascades
// to orders: historical references stay as free text.
type RemoveCatalogEntryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveCatalogEntryCommandHandler creates a handler for registry deletions.
// Requires a CatalogUoWFactory for transactional persistence.
func NewRemoveCatalogEntryCommandHandler(uowFactory CatalogUoWFactory) RemoveCatalogEntryCommandHandler {
	return RemoveCatalogEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registry deletion command.
func (h *RemoveCatalogEntryCommandHandler) Handle(ctx context.Context, cmd RemoveCatalogEntryCommand) error {
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

	if err := uow.CatalogRegistry().Remove(ctx, cmd.Kind(), cmd.Name()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
