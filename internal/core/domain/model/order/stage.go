package order

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Stage represents one step of the fixed fulfillment process a
// production order moves through, from intake to delivery of the
// finished photographs.
//
// The process is strictly linear:
//
//	Order Received -> Retrieved from Manufacturer -> At Photography Studio
//	  -> Collected from Studio -> Returned to Manufacturer -> Pre Printing
//	  -> Printing -> Post Printing -> Photos Delivered
//
// Photos Delivered is terminal; no further advance is possible. Stage is
// a value object that validates transitions and provides string
// representations for persistence and display.
type Stage int

const (
	// UnknownStage represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	UnknownStage Stage = iota

	// OrderReceived is the initial stage of every order.
	OrderReceived

	// RetrievedFromManufacturer means the goods were picked up from the
	// manufacturer for photography.
	RetrievedFromManufacturer

	// AtPhotographyStudio means the goods are with the studio.
	AtPhotographyStudio

	// CollectedFromStudio means the goods were collected back after the
	// shoot.
	CollectedFromStudio

	// ReturnedToManufacturer means the goods are back with the
	// manufacturer.
	ReturnedToManufacturer

	// PrePrinting covers layout and prepress work on the photographs.
	PrePrinting

	// Printing means the photographs are on the press.
	Printing

	// PostPrinting covers cutting, finishing, and packing.
	PostPrinting

	// PhotosDelivered is the terminal stage: the finished photographs
	// were handed over to the client.
	PhotosDelivered
)

// getStageStrings returns a map of Stage values to their display names.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage:              "Unknown",
		OrderReceived:             "Order Received",
		RetrievedFromManufacturer: "Retrieved from Manufacturer",
		AtPhotographyStudio:       "At Photography Studio",
		CollectedFromStudio:       "Collected from Studio",
		ReturnedToManufacturer:    "Returned to Manufacturer",
		PrePrinting:               "Pre Printing",
		Printing:                  "Printing",
		PostPrinting:              "Post Printing",
		PhotosDelivered:           "Photos Delivered",
	}
}

// Stages returns the full ordered fulfillment sequence, from
// OrderReceived to PhotosDelivered. The slice is freshly allocated on
// every call so callers may not corrupt the process definition.
func Stages() []Stage {
	return []Stage{
		OrderReceived,
		RetrievedFromManufacturer,
		AtPhotographyStudio,
		CollectedFromStudio,
		ReturnedToManufacturer,
		PrePrinting,
		Printing,
		PostPrinting,
		PhotosDelivered,
	}
}

// StageFromString resolves a display name back to its Stage value.
// Returns an error for names that are not part of the process.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getStageStrings() {
		if stage != UnknownStage && name == s {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("%q is not a fulfillment stage", s),
	)
}

// Validate checks that the Stage value belongs to the fulfillment
// sequence. UnknownStage (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if s < OrderReceived || s > PhotosDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%d is not a valid stage", s),
		)
	}
	return nil
}

// String returns the human-readable name of the stage, or "Unknown" for
// invalid values. It implements fmt.Stringer.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Index returns the zero-based position of the stage in the fulfillment
// sequence (OrderReceived is 0, PhotosDelivered is 8). Returns -1 for
// invalid stages.
func (s Stage) Index() int {
	if err := s.Validate(); err != nil {
		return -1
	}
	return int(s) - 1
}

// IsTerminal reports whether the stage is the final one in the process.
func (s Stage) IsTerminal() bool {
	return s == PhotosDelivered
}

// Next returns the stage that directly follows this one. The terminal
// stage has no successor: advancing past it returns
// ErrOrderAtTerminalStage, which callers surface as a refusal rather
// than a fault.
func (s Stage) Next() (Stage, error) {
	if err := s.Validate(); err != nil {
		return UnknownStage, err
	}
	if s.IsTerminal() {
		return UnknownStage, ErrOrderAtTerminalStage
	}
	return s + 1, nil
}
