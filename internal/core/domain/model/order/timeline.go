package order

import (
	"time"

	"printflow/internal/pkg/errs"
)

// TimelineEntry records the moment an order entered a stage. The
// timeline of an order is the append-only audit trail of its progress:
// one entry per stage reached, in process order, each carrying the
// timestamp the stage was entered.
type TimelineEntry struct {
	stage     Stage
	enteredAt time.Time
}

// NewTimelineEntry creates a timeline entry for the given stage and
// timestamp. The stage must be valid and the timestamp must be set.
func NewTimelineEntry(stage Stage, enteredAt time.Time) (TimelineEntry, error) {
	if err := stage.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if enteredAt.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("enteredAt")
	}
	return TimelineEntry{stage: stage, enteredAt: enteredAt}, nil
}

// Stage returns the stage this entry records.
func (t TimelineEntry) Stage() Stage {
	return t.stage
}

// EnteredAt returns the moment the stage was entered.
func (t TimelineEntry) EnteredAt() time.Time {
	return t.enteredAt
}

// IsEqual compares two entries by stage and timestamp.
func (t TimelineEntry) IsEqual(other TimelineEntry) bool {
	return t.stage == other.stage && t.enteredAt.Equal(other.enteredAt)
}
