package catalog

import (
	"strings"
	"time"

	"printflow/internal/pkg/errs"
)

// Entry is a single name in one of the workshop registries. Entries are
// value objects identified by the (kind, name) pair: registering the
// same name twice in the same registry is a no-op.
type Entry struct {
	kind      Kind
	name      string
	createdAt time.Time
}

// NewEntry creates a registry entry for the given kind and name. The
// kind must name a registry, the name must be non-blank, and the
// timestamp must be set.
func NewEntry(kind Kind, name string, createdAt time.Time) (Entry, error) {
	if err := kind.Validate(); err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Entry{}, errs.NewValueIsRequiredError("name")
	}
	if createdAt.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("createdAt")
	}
	return Entry{kind: kind, name: name, createdAt: createdAt}, nil
}

// Kind returns the registry this entry belongs to.
func (e Entry) Kind() Kind {
	return e.kind
}

// Name returns the registered name.
func (e Entry) Name() string {
	return e.name
}

// CreatedAt returns the moment the name was first registered.
func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

// IsEqual compares two entries by their identity, the (kind, name) pair.
func (e Entry) IsEqual(other Entry) bool {
	return e.kind == other.kind && e.name == other.name
}
