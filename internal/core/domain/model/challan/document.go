package challan

import (
	"time"

	"github.com/google/uuid"
)

// Letterhead is printed at the top of every challan page.
const Letterhead = "PATEL OFFSET"

// Signatory roles printed on challan copies. Each role also names the
// copy handed to that party.
const (
	SignatoryDeliveryMan = "Delivery Man"
	SignatoryEndParty    = "End Party"
)

// Document is a composed challan, ready for rendering. It is a plain
// value tree with no behavior: pages hold sections, sections hold rows.
// Rendering it to paper or PDF is a concern of the caller.
type Document struct {
	// ID uniquely identifies this composition.
	ID uuid.UUID

	// Type is the challan layout this document follows.
	Type Type

	// GeneratedAt is the composition timestamp, stamped on every page.
	GeneratedAt time.Time

	// Pages holds the printable pages in output order. Master challans
	// have one page; all other types have one page per signatory copy.
	Pages []Page
}

// Page is a single printable challan page.
type Page struct {
	// Letterhead is the workshop name printed at the top.
	Letterhead string

	// Title is the page heading, naming the challan type and, for copy
	// pages, the party the copy is for.
	Title string

	// GeneratedAt is the composition timestamp printed under the title.
	GeneratedAt time.Time

	// Table lists the selected orders.
	Table Table

	// Signatures is the signature section of copy pages. Nil on master
	// pages.
	Signatures *SignatureBlock

	// Checklist is the blank verification section of master pages. Nil
	// on copy pages.
	Checklist *Checklist
}

// Table is the tabular section of a page: a header row of column names
// and one row per order.
type Table struct {
	Columns []string
	Rows    []TableRow
}

// TableRow holds the cell values of a single order, positionally
// matching the table's columns. A blank cell is an empty string.
type TableRow struct {
	Cells []string
}

// SignatureBlock names the parties that sign a copy page.
type SignatureBlock struct {
	Signatories []string
}

// Checklist is the blank verification section of a master page: one
// labeled slot per fulfillment stage, to be ticked off by hand.
type Checklist struct {
	Items []string
}
