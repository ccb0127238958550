package challan

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Type selects the kind of challan document to compose. Each type has
// its own page layout: which columns the order table carries, whether
// signature blocks or a verification checklist appear, and how many
// copies make up the document.
type Type int

const (
	// UnknownType represents an invalid or undefined challan type.
	// This value (0) helps catch uninitialized Type values.
	UnknownType Type = iota

	// Receiving accompanies goods picked up from the manufacturer.
	Receiving

	// Delivering accompanies goods returned to the manufacturer.
	Delivering

	// Photos accompanies the finished photographs handed to the client.
	Photos

	// Master is the internal worksheet with a blank prints column and a
	// verification checklist.
	Master
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Receiving:   "receiving",
		Delivering:  "delivering",
		Photos:      "photos",
		Master:      "master",
	}
}

// TypeFromString resolves a string to its Type value. Returns an error
// for strings that do not name a challan type.
func TypeFromString(s string) (Type, error) {
	for typ, name := range getTypeStrings() {
		if typ != UnknownType && name == s {
			return typ, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"type",
		fmt.Errorf("%q is not a challan type", s),
	)
}

// Validate checks that the Type value names one of the challan layouts.
func (t Type) Validate() error {
	if t < Receiving || t > Master {
		return errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("%d is not a valid type", t),
		)
	}
	return nil
}

// String returns the string representation of the type, or "unknown"
// for invalid values. It implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
