package schedule

// Reconcile merges a freshly generated window with the previously persisted
// schedule. Stale auto entries from the prior run are discarded, manual
// entries are kept untouched, and the result is sorted by date. A manual
// entry sharing a date with an auto entry is kept alongside it; the
// schedule never deduplicates by date.
//
// Reconcile is idempotent for a fixed clock: running it twice in a row
// yields the same collection.
func Reconcile(persisted, fresh []Event) []Event {
	merged := make([]Event, 0, len(fresh)+len(persisted))
	merged = append(merged, fresh...)

	for _, event := range persisted {
		if !event.IsAuto() {
			merged = append(merged, event)
		}
	}

	SortByDate(merged)
	return merged
}
