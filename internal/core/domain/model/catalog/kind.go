package catalog

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Kind distinguishes the two registries the workshop keeps: the clients
// that place orders and the manufacturers that supply the goods.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Client is the registry of parties that place orders.
	Client

	// Manufacturer is the registry of suppliers of the goods.
	Manufacturer
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "unknown",
		Client:       "client",
		Manufacturer: "manufacturer",
	}
}

// KindFromString resolves a string to its Kind value. Returns an error
// for strings that do not name a registry.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getKindStrings() {
		if kind != UnknownKind && name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"kind",
		fmt.Errorf("%q is not a catalog kind", s),
	)
}

// Validate checks that the Kind value names one of the registries.
func (k Kind) Validate() error {
	if k != Client && k != Manufacturer {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%d is not a valid kind", k),
		)
	}
	return nil
}

// String returns the string representation of the kind, or "unknown" for
// invalid values. It implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
