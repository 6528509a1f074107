package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestReconcile_EmptyPersisted(t *testing.T) {
	fresh := NewGenerator(fixedClock(2025, time.March, 10), nil, 14).Generate()

	merged := Reconcile(nil, fresh)

	if !reflect.DeepEqual(merged, fresh) {
		t.Error("reconcile with no persisted schedule should return the fresh window verbatim")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)

	first := Reconcile(nil, gen.Generate())
	second := Reconcile(first, gen.Generate())

	if !reflect.DeepEqual(first, second) {
		t.Error("reconcile is not idempotent for a fixed clock")
	}
}

func TestReconcile_ManualEntryPreserved(t *testing.T) {
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)
	manual := Event{
		ID:        "m1",
		Date:      "2025-03-12",
		Location:  "Annual Book Fair",
		StartTime: "09:00",
		EndTime:   "17:00",
		Origin:    OriginManual,
	}

	persisted := Reconcile(nil, gen.Generate())
	persisted = append(persisted, manual)
	SortByDate(persisted)

	merged := Reconcile(persisted, gen.Generate())

	found := false
	autoCount := 0
	for _, event := range merged {
		if event.ID == "m1" {
			found = true
			if !reflect.DeepEqual(event, manual) {
				t.Errorf("manual entry mutated: %+v", event)
			}
		}
		if event.IsAuto() {
			autoCount++
		}
	}

	if !found {
		t.Error("manual entry lost by reconciliation")
	}
	if autoCount != 14 {
		t.Errorf("auto entries = %d, want full fresh window of 14", autoCount)
	}
	// Same-date auto and manual entries are both kept: one extra entry total
	if len(merged) != 15 {
		t.Errorf("len(merged) = %d, want 15", len(merged))
	}
}

func TestReconcile_StaleAutoEntriesRemoved(t *testing.T) {
	old := NewGenerator(fixedClock(2025, time.February, 1), nil, 14).Generate()
	freshGen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)

	merged := Reconcile(old, freshGen.Generate())

	for _, event := range merged {
		if event.Date < "2025-03-10" {
			t.Errorf("stale auto entry survived: %s", event.ID)
		}
	}
	if len(merged) != 14 {
		t.Errorf("len(merged) = %d, want 14", len(merged))
	}
}

func TestReconcile_SortedByDate(t *testing.T) {
	gen := NewGenerator(fixedClock(2025, time.March, 10), nil, 14)
	persisted := []Event{
		{ID: "m2", Date: "2025-04-01", Location: "Spring Festival", Origin: OriginManual},
		{ID: "m1", Date: "2025-01-05", Location: "Winter Popup", Origin: OriginManual},
	}

	merged := Reconcile(persisted, gen.Generate())

	for i := 1; i < len(merged); i++ {
		if merged[i-1].Date > merged[i].Date {
			t.Fatalf("not sorted at %d: %s > %s", i, merged[i-1].Date, merged[i].Date)
		}
	}
	if merged[0].ID != "m1" {
		t.Errorf("merged[0].ID = %s, want m1 (earliest date first)", merged[0].ID)
	}
	if merged[len(merged)-1].ID != "m2" {
		t.Errorf("last entry = %s, want m2", merged[len(merged)-1].ID)
	}
}

func TestReconcile_LegacyPrefixTaggedEntries(t *testing.T) {
	// Entries persisted before the origin tag existed are classified by id
	// prefix alone.
	persisted := []Event{
		{ID: "auto-2025-02-01", Date: "2025-02-01", Location: "Downtown Library Plaza"},
		{ID: "1714000000000", Date: "2025-03-12", Location: "Pop-up Stand"},
	}
	fresh := NewGenerator(fixedClock(2025, time.March, 10), nil, 14).Generate()

	merged := Reconcile(persisted, fresh)

	for _, event := range merged {
		if event.ID == "auto-2025-02-01" {
			t.Error("legacy auto entry survived reconciliation")
		}
	}

	found := false
	for _, event := range merged {
		if event.ID == "1714000000000" {
			found = true
		}
	}
	if !found {
		t.Error("legacy manual entry lost by reconciliation")
	}
}
