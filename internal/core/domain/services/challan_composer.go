package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"printflow/internal/core/domain/model/challan"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// ChallanComposer is a domain service that turns a validated challan
// request plus the current order collection into a printable Document
// tree. It is a pure transformation: it reads orders, never mutates
// them, and leaves rendering to the caller.
//
// Layout rules by type:
//   - Master: a single page with one table row per resolved order, a
//     blank prints column, and a verification checklist with one slot
//     per fulfillment stage.
//   - Receiving and Delivering: one page per signatory copy, identical
//     tables, each page closed by a signature block.
//   - Photos: the same two-copy structure with an extra column showing
//     the delivered photo count for each order.
//
// Selected ids with no matching order are skipped; the skipped ids are
// reported back to the caller so the omission is visible instead of
// silent.
//
// Example usage:
//
//	composer := NewChallanComposer()
//	req, _ := challan.NewRequest(challan.Master, ids, nil)
//
//	doc, skipped, err := composer.Compose(orders, req, time.Now())
//	if err != nil {
//	    // The request was not valid
//	    return
//	}
//	if len(skipped) > 0 {
//	    // Some selected ids matched no order
//	}
type ChallanComposer struct{}

// NewChallanComposer creates a new ChallanComposer instance.
//
// Returns:
//   - ChallanComposer: A new instance ready to compose documents
func NewChallanComposer() ChallanComposer {
	return ChallanComposer{}
}

// Compose builds the challan document for the given request over the
// given order collection.
//
// Parameters:
//   - orders: The current order collection to resolve the selection against
//   - request: The validated challan request
//   - generatedAt: The composition timestamp stamped on the document and
//     every page (must be set)
//
// Returns:
//   - challan.Document: The composed document
//   - []kernel.OrderID: Selected ids that matched no order, in selection
//     order
//   - error: Validation error when the request type is missing or no
//     selected id resolved to an order
//
// A selection that resolves to zero orders is rejected with
// challan.ErrNoOrdersSelected: a challan with an empty table is never a
// useful document.
func (c ChallanComposer) Compose(orders []*order.Order, request challan.Request,
	generatedAt time.Time) (challan.Document, []kernel.OrderID, error) {
	if err := request.Type().Validate(); err != nil {
		return challan.Document{}, nil, challan.ErrTypeIsRequired
	}

	resolved, skipped := c.resolve(orders, request.OrderIDs())
	if len(resolved) == 0 {
		return challan.Document{}, skipped, challan.ErrNoOrdersSelected
	}

	doc := challan.Document{
		ID:          uuid.New(),
		Type:        request.Type(),
		GeneratedAt: generatedAt,
	}

	switch request.Type() {
	case challan.Master:
		doc.Pages = []challan.Page{c.masterPage(resolved, generatedAt)}
	default:
		doc.Pages = c.copyPages(resolved, request, generatedAt)
	}

	return doc, skipped, nil
}

// resolve looks up each selected id in the order collection, splitting
// the selection into resolved orders and skipped ids. Both slices keep
// the selection order.
func (c ChallanComposer) resolve(orders []*order.Order,
	ids []kernel.OrderID) ([]*order.Order, []kernel.OrderID) {
	byID := make(map[kernel.OrderID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	resolved := make([]*order.Order, 0, len(ids))
	var skipped []kernel.OrderID
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			resolved = append(resolved, o)
		} else {
			skipped = append(skipped, id)
		}
	}
	return resolved, skipped
}

// masterPage builds the single page of a master challan: the order
// table with a blank prints column and the stage checklist.
func (c ChallanComposer) masterPage(orders []*order.Order, generatedAt time.Time) challan.Page {
	columns := []string{"Order ID", "Client", "Manufacturer", "Product", "Quantity", "Number of Prints"}

	rows := make([]challan.TableRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, challan.TableRow{Cells: []string{
			o.ID().String(),
			o.Client(),
			o.Manufacturer(),
			o.Product(),
			strconv.Itoa(o.Quantity()),
			"",
		}})
	}

	stages := order.Stages()
	items := make([]string, 0, len(stages))
	for _, stage := range stages {
		items = append(items, stage.String())
	}

	return challan.Page{
		Letterhead:  challan.Letterhead,
		Title:       "Master Challan",
		GeneratedAt: generatedAt,
		Table:       challan.Table{Columns: columns, Rows: rows},
		Checklist:   &challan.Checklist{Items: items},
	}
}

// copyPages builds one page per signatory copy for receiving,
// delivering, and photos challans. Photos challans carry an extra
// delivered-count column.
func (c ChallanComposer) copyPages(orders []*order.Order, request challan.Request,
	generatedAt time.Time) []challan.Page {
	columns := []string{"Order ID", "Client", "Manufacturer", "Product", "Quantity"}
	withPhotos := request.Type() == challan.Photos
	if withPhotos {
		columns = append(columns, "Photos Delivered")
	}

	rows := make([]challan.TableRow, 0, len(orders))
	for _, o := range orders {
		cells := []string{
			o.ID().String(),
			o.Client(),
			o.Manufacturer(),
			o.Product(),
			strconv.Itoa(o.Quantity()),
		}
		if withPhotos {
			cells = append(cells, strconv.Itoa(request.PhotosDelivered(o.ID())))
		}
		rows = append(rows, challan.TableRow{Cells: cells})
	}

	parties := []string{challan.SignatoryDeliveryMan, challan.SignatoryEndParty}
	pages := make([]challan.Page, 0, len(parties))
	for _, party := range parties {
		pages = append(pages, challan.Page{
			Letterhead:  challan.Letterhead,
			Title:       fmt.Sprintf("Challan - %s (%s Copy)", request.Type(), party),
			GeneratedAt: generatedAt,
			Table:       challan.Table{Columns: columns, Rows: rows},
			Signatures:  &challan.SignatureBlock{Signatories: parties},
		})
	}
	return pages
}
