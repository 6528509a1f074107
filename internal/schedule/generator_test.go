package schedule

import (
	"testing"
	"time"
)

// fixedClock pins "now" so the generated window is deterministic.
func fixedClock(y int, m time.Month, d int) Clock {
	return func() time.Time {
		return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
	}
}

func TestGenerate_WindowShape(t *testing.T) {
	// 2025-03-10 is a Monday; the following 14 days hold no federal holidays
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)

	events := gen.Generate()

	if len(events) != 14 {
		t.Fatalf("len(events) = %d, want 14", len(events))
	}

	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	for i, event := range events {
		wantDate := want.AddDate(0, 0, i).Format("2006-01-02")
		if event.Date != wantDate {
			t.Errorf("events[%d].Date = %s, want %s (contiguous, no gaps)", i, event.Date, wantDate)
		}
		if event.ID != "auto-"+event.Date {
			t.Errorf("events[%d].ID = %s, want auto-%s", i, event.ID, event.Date)
		}
		if !event.IsAuto() {
			t.Errorf("events[%d] not tagged auto", i)
		}
	}
}

func TestGenerate_RotationByDayOffset(t *testing.T) {
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)

	events := gen.Generate()

	for i, event := range events {
		if event.IsClosed {
			continue
		}
		want := DefaultLocations[i%len(DefaultLocations)]
		if event.Location != want {
			t.Errorf("events[%d].Location = %q, want %q", i, event.Location, want)
		}
	}
}

func TestGenerate_WeekendVsWeekdayHours(t *testing.T) {
	// Window starting Monday 2025-03-10: index 1 is Tuesday, index 5 is Saturday
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)

	events := gen.Generate()

	tuesday := events[1]
	if tuesday.StartTime != "16:00" || tuesday.EndTime != "20:00" {
		t.Errorf("Tuesday hours = %s-%s, want 16:00-20:00", tuesday.StartTime, tuesday.EndTime)
	}

	saturday := events[5]
	if saturday.Date != "2025-03-15" {
		t.Fatalf("events[5].Date = %s, want 2025-03-15 (Saturday)", saturday.Date)
	}
	if saturday.StartTime != "11:00" || saturday.EndTime != "15:00" {
		t.Errorf("Saturday hours = %s-%s, want 11:00-15:00", saturday.StartTime, saturday.EndTime)
	}
}

func TestGenerate_HolidayClosure(t *testing.T) {
	// Window starting 2025-06-16 (Monday) contains Juneteenth on Thursday
	gen := NewGenerator(fixedClock(2025, time.June, 16), nil, 14)

	events := gen.Generate()

	var juneteenth *Event
	for i := range events {
		if events[i].Date == "2025-06-19" {
			juneteenth = &events[i]
			break
		}
	}
	if juneteenth == nil {
		t.Fatal("2025-06-19 missing from window")
	}

	if !juneteenth.IsClosed {
		t.Error("Juneteenth entry not closed")
	}
	if juneteenth.Location != "Closed - Juneteenth" {
		t.Errorf("Location = %q, want %q", juneteenth.Location, "Closed - Juneteenth")
	}
	if juneteenth.StartTime != "" || juneteenth.EndTime != "" {
		t.Errorf("closed entry has hours %s-%s, want empty", juneteenth.StartTime, juneteenth.EndTime)
	}
}

func TestGenerate_CustomWindowAndLocations(t *testing.T) {
	locations := []string{"Stop A", "Stop B"}
	gen := NewGenerator(fixedClock(2025, time.March, 10), locations, 4)

	events := gen.Generate()

	if len(events) != 4 {
		t.Fatalf("len(events) = %d, want 4", len(events))
	}
	if events[0].Location != "Stop A" || events[1].Location != "Stop B" || events[2].Location != "Stop A" {
		t.Errorf("rotation mismatch: %q, %q, %q", events[0].Location, events[1].Location, events[2].Location)
	}
}
