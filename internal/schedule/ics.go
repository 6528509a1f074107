package schedule

import (
	"fmt"
	"io"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/pkg/dateutil"
)

const icsUIDDomain = "booktruck.secondchapter.org"

// ExportICS writes the persisted schedule as an iCalendar feed of all-day
// events. Closed days keep their closure reason as the summary so
// subscribers see why the truck is parked.
func (s *Service) ExportICS(w io.Writer) error {
	events, err := s.Events()
	if err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//The Second Chapter//booktruck//EN")
	cal.SetName("Book Truck Schedule")
	cal.SetDescription("Rolling book truck locations and hours")

	now := s.gen.clock()
	for _, event := range events {
		date, err := dateutil.ParseISODate(event.Date)
		if err != nil {
			s.logger.Warn("Skipping event with unparseable date in ICS export",
				zap.String("id", event.ID),
				zap.String("date", event.Date))
			continue
		}

		// UID must be stable across exports for calendar apps to update
		// rather than duplicate entries.
		ve := cal.AddEvent(fmt.Sprintf("%s@%s", event.ID, icsUIDDomain))
		ve.SetDtStampTime(now)
		ve.SetAllDayStartAt(date)
		ve.SetAllDayEndAt(date.AddDate(0, 0, 1))

		if event.IsClosed {
			ve.SetSummary(event.Location)
			continue
		}

		ve.SetSummary("Book Truck - " + event.Location)
		ve.SetLocation(event.Location)
		ve.SetDescription(fmt.Sprintf("Open %s-%s", event.StartTime, event.EndTime))
	}

	return cal.SerializeTo(w)
}
