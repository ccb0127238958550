package commands

import (
	"errors"
	"strings"

	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/pkg/guard"
)

var (
	ErrRemoveCatalogEntryCommandIsNotConstructed = errors.New(
		"RemoveCatalogEntryCommand must be created via NewRemoveCatalogEntryCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// RemoveCatalogEntryCommand represents a request to delete a name from one
// of the registries. Orders referencing the name keep it as free text.
type RemoveCatalogEntryCommand struct { //nolint:recvcheck //using for validation
	kind catalog.Kind
	name string

	guard guard.ConstructorGuard
}

// NewRemoveCatalogEntryCommand creates a command to delete a registry name.
// Validates that the kind names a registry and the name is not blank.
func NewRemoveCatalogEntryCommand(kind catalog.Kind, name string) (RemoveCatalogEntryCommand, error) {
	if err := kind.Validate(); err != nil {
		return RemoveCatalogEntryCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return RemoveCatalogEntryCommand{}, ErrNameIsRequired
	}

	return RemoveCatalogEntryCommand{
		kind:  kind,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCatalogEntryCommandIsNotConstructed if validation fails.
func (c RemoveCatalogEntryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCatalogEntryCommandIsNotConstructed)
}

// Kind returns the registry to delete from.
func (c RemoveCatalogEntryCommand) Kind() catalog.Kind {
	return c.kind
}

// Name returns the registered name to delete.
func (c RemoveCatalogEntryCommand) Name() string {
	return c.name
}
