package challan

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

var (
	// ErrTypeIsRequired is returned when a challan is requested without a type.
	ErrTypeIsRequired = errors.New("challan type is required")

	// ErrNoOrdersSelected is returned when a challan is requested with an
	// empty order selection.
	ErrNoOrdersSelected = errors.New("at least one order must be selected")
)

// Request captures a validated request to compose a challan: the
// document type, the selected order ids, and the delivered photo counts
// for photos challans.
//
// The selection preserves the caller's ordering. Duplicate ids are
// dropped, keeping the first occurrence.
type Request struct {
	typ         Type
	orderIDs    []kernel.OrderID
	photoCounts map[kernel.OrderID]int
}

// NewRequest creates a validated challan request.
//
// Parameters:
//   - typ: The challan type (UnknownType is rejected with ErrTypeIsRequired)
//   - orderIDs: The selected orders, in the caller's order (must be non-empty)
//   - photoCounts: Delivered photo counts per order, used by photos challans;
//     may be nil, and orders without a count default to 0
//
// Returns a validation error when the type is missing, the selection is
// empty, any id is invalid, or any photo count is negative.
func NewRequest(typ Type, orderIDs []kernel.OrderID, photoCounts map[kernel.OrderID]int) (Request, error) {
	if typ == UnknownType {
		return Request{}, ErrTypeIsRequired
	}
	if err := typ.Validate(); err != nil {
		return Request{}, err
	}
	if len(orderIDs) == 0 {
		return Request{}, ErrNoOrdersSelected
	}

	seen := make(map[kernel.OrderID]struct{}, len(orderIDs))
	deduped := make([]kernel.OrderID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return Request{}, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	counts := make(map[kernel.OrderID]int, len(photoCounts))
	for id, count := range photoCounts {
		if count < 0 {
			return Request{}, errs.NewValueIsInvalidErrorWithCause(
				"photoCounts",
				fmt.Errorf("count for %s is negative: %d", id, count),
			)
		}
		counts[id] = count
	}

	return Request{typ: typ, orderIDs: deduped, photoCounts: counts}, nil
}

// Type returns the requested challan type.
func (r Request) Type() Type {
	return r.typ
}

// OrderIDs returns the deduplicated selection, preserving the caller's
// ordering.
func (r Request) OrderIDs() []kernel.OrderID {
	ids := make([]kernel.OrderID, len(r.orderIDs))
	copy(ids, r.orderIDs)
	return ids
}

// PhotosDelivered returns the delivered photo count recorded for the
// given order, or 0 when none was provided.
func (r Request) PhotosDelivered(id kernel.OrderID) int {
	return r.photoCounts[id]
}
