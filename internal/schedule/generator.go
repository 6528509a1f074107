package schedule

import (
	"time"

	"github.com/secondchapter/booktruck/internal/holiday"
	"github.com/secondchapter/booktruck/pkg/dateutil"
)

// Clock returns the current time in the reference timezone. It is injected
// so tests can pin "now" to a fixed instant.
type Clock func() time.Time

// ReferenceTimezone anchors "today" independent of the host's locale.
const ReferenceTimezone = "America/New_York"

// DefaultDaysAhead is the length of the rolling forward-looking window.
const DefaultDaysAhead = 14

// DefaultLocations is the fixed rotation of truck stops, cycled by
// day-offset over the generation window.
var DefaultLocations = []string{
	"Downtown Library Plaza",
	"Westside Community Center",
	"Eastside Farmers Market",
	"North End Park",
	"South Bay Promenade",
	"Riverside Elementary",
}

// Default operating hours; the truck runs evenings on weekdays and middays
// on weekends.
const (
	weekdayOpen  = "16:00"
	weekdayClose = "20:00"
	weekendOpen  = "11:00"
	weekendClose = "15:00"
)

// Generator produces the auto-generated window of schedule events.
type Generator struct {
	clock     Clock
	locations []string
	daysAhead int
}

// NewGenerator creates a Generator. A nil clock falls back to the wall
// clock in the reference timezone; empty locations and a non-positive
// window fall back to the defaults.
func NewGenerator(clock Clock, locations []string, daysAhead int) *Generator {
	if clock == nil {
		clock = referenceClock()
	}
	if len(locations) == 0 {
		locations = DefaultLocations
	}
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}
	return &Generator{
		clock:     clock,
		locations: locations,
		daysAhead: daysAhead,
	}
}

// Generate returns one auto entry per day for today .. today+daysAhead-1,
// in date order. Holidays become closed entries carrying the holiday name;
// open days get the next rotation location and the weekday or weekend
// default hours.
func (g *Generator) Generate() []Event {
	today := dateutil.StartOfDay(g.clock())

	events := make([]Event, 0, g.daysAhead)
	for i := 0; i < g.daysAhead; i++ {
		date := today.AddDate(0, 0, i)
		iso := dateutil.FormatISODate(date)

		if h := holiday.Federal(date); h.IsHoliday {
			events = append(events, Event{
				ID:       AutoID(iso),
				Date:     iso,
				Location: "Closed - " + h.Name,
				IsClosed: true,
				Origin:   OriginAuto,
			})
			continue
		}

		start, end := weekdayOpen, weekdayClose
		if dateutil.IsWeekend(date) {
			start, end = weekendOpen, weekendClose
		}

		events = append(events, Event{
			ID:        AutoID(iso),
			Date:      iso,
			Location:  g.locations[i%len(g.locations)],
			StartTime: start,
			EndTime:   end,
			Origin:    OriginAuto,
		})
	}

	return events
}

// referenceClock returns a Clock reading the wall clock in the reference
// timezone. When the IANA database is unavailable the clock degrades to a
// fixed EST offset.
func referenceClock() Clock {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60)
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}
