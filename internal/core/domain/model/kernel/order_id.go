// Package kernel contains shared value objects used across the domain
// model. The central one is OrderID, the human-readable sequential
// identifier that production orders are tracked and printed under.
package kernel

import (
	"fmt"
	"regexp"

	"printflow/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions. It is returned
// when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// orderIDPattern matches the printable order identifier format: the
// literal ORD prefix followed by a zero-padded sequence number of at
// least three digits (ORD001, ORD042, ORD1000).
var orderIDPattern = regexp.MustCompile(`^ORD[0-9]{3,}$`)

// OrderID is a value object that represents the identifier of a
// production order. Identifiers are sequential and human-readable so
// they can appear on printed challans and be dictated over the phone.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID or OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Allocate the next identifier for a collection of 9 orders
//	id, err := kernel.NewOrderID(10)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "ORD010"
//
//	// Parse an identifier received from outside
//	id, err = kernel.OrderIDFromString("ORD001")
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from a positive sequence number. The
// sequence number is zero-padded to at least three digits, so sequence 7
// yields ORD007 and sequence 1000 yields ORD1000.
//
// Returns an error if the sequence number is not positive.
func NewOrderID(sequence int) (OrderID, error) {
	if sequence <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not a positive sequence number", sequence),
		)
	}
	return OrderID{value: fmt.Sprintf("ORD%03d", sequence)}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// The string must match the ORD-prefixed zero-padded format. This
// function is typically used when reconstructing orders from persistence
// or when parsing identifiers from API requests.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("ORD042")
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q does not match the ORD format", s),
		)
	}
	return OrderID{value: s}, nil
}

// String returns the printable representation of the identifier,
// e.g. "ORD001". It implements fmt.Stringer.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two OrderIDs for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was constructed through one of the
// constructor functions. The zero value fails validation.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
