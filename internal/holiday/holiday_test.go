package holiday

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFederal_Holidays2025(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"New Year's Day", date(2025, time.January, 1), "New Year's Day"},
		{"Juneteenth", date(2025, time.June, 19), "Juneteenth"},
		{"Independence Day", date(2025, time.July, 4), "Independence Day"},
		{"Veterans Day", date(2025, time.November, 11), "Veterans Day"},
		{"Christmas Day", date(2025, time.December, 25), "Christmas Day"},
		{"MLK Day 3rd Monday", date(2025, time.January, 20), "Martin Luther King Jr. Day"},
		{"Presidents Day 3rd Monday", date(2025, time.February, 17), "Presidents Day"},
		{"Memorial Day last Monday", date(2025, time.May, 26), "Memorial Day"},
		{"Labor Day 1st Monday", date(2025, time.September, 1), "Labor Day"},
		{"Columbus Day 2nd Monday", date(2025, time.October, 13), "Columbus Day"},
		{"Thanksgiving 4th Thursday", date(2025, time.November, 27), "Thanksgiving"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Federal(tt.date)

			if !result.IsHoliday {
				t.Fatalf("Federal(%v).IsHoliday = false, want true", tt.date.Format("2006-01-02"))
			}
			if result.Name != tt.want {
				t.Errorf("Federal(%v).Name = %q, want %q",
					tt.date.Format("2006-01-02"), result.Name, tt.want)
			}
		})
	}
}

func TestFederal_NonHolidays(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"Arbitrary March date", date(2025, time.March, 15)},
		{"2nd Monday of January", date(2025, time.January, 13)},
		{"Monday after Memorial Day window", date(2025, time.May, 19)},
		{"Thursday before Thanksgiving", date(2025, time.November, 20)},
		{"Non-Monday in floating-holiday month", date(2025, time.February, 18)},
		{"Christmas Eve", date(2025, time.December, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Federal(tt.date)

			if result.IsHoliday {
				t.Errorf("Federal(%v) = %+v, want no holiday",
					tt.date.Format("2006-01-02"), result)
			}
			if result.Name != "" {
				t.Errorf("Federal(%v).Name = %q, want empty",
					tt.date.Format("2006-01-02"), result.Name)
			}
		})
	}
}

func TestFederal_FullYearCount2025(t *testing.T) {
	// 2025 has all 11 designated holidays on distinct dates
	count := 0
	for d := date(2025, time.January, 1); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		if Federal(d).IsHoliday {
			count++
		}
	}

	if count != 11 {
		t.Errorf("holiday count for 2025 = %d, want 11", count)
	}
}
