package schedule

import (
	"sort"
	"strings"
)

// Origin tags how a schedule event came to exist.
type Origin string

const (
	// OriginAuto marks entries produced by the generator for the rolling
	// window; they are replaced wholesale on every regeneration.
	OriginAuto Origin = "auto"

	// OriginManual marks entries created or edited by hand; regeneration
	// never touches them.
	OriginManual Origin = "manual"
)

// AutoIDPrefix is the id prefix carried by generated entries. The prefix is
// kept alongside the explicit Origin tag so schedules persisted by older
// builds (which distinguished entries by id shape alone) still merge
// correctly.
const AutoIDPrefix = "auto-"

// Event is one calendar-day entry of the book truck schedule.
type Event struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // ISO "YYYY-MM-DD", the grouping key
	Location  string `json:"location"`
	StartTime string `json:"startTime"` // "HH:MM", empty when closed
	EndTime   string `json:"endTime"`   // "HH:MM", empty when closed
	IsClosed  bool   `json:"isClosed"`
	Origin    Origin `json:"origin,omitempty"`
}

// AutoID returns the generated-entry id for an ISO date.
func AutoID(isoDate string) string {
	return AutoIDPrefix + isoDate
}

// IsAuto reports whether the event belongs to the generated rolling window.
// Events without an Origin tag fall back to the id-prefix convention.
func (e Event) IsAuto() bool {
	switch e.Origin {
	case OriginAuto:
		return true
	case OriginManual:
		return false
	}
	return strings.HasPrefix(e.ID, AutoIDPrefix)
}

// SortByDate sorts events ascending by date string. Dates are zero-padded
// ISO, so string comparison orders them chronologically; the sort is stable
// so same-date entries keep their relative order.
func SortByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}
