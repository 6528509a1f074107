package schedule

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
	"github.com/secondchapter/booktruck/pkg/dateutil"
)

const scheduleKey = "schedule"

// ErrEventNotFound is returned when an update or delete names an unknown id.
var ErrEventNotFound = errors.New("schedule event not found")

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Service owns the persisted schedule collection. All mutations are
// full-collection replaces; last writer wins.
type Service struct {
	store  store.Store
	gen    *Generator
	logger *zap.Logger
}

// NewService creates a schedule service backed by the given store
func NewService(st store.Store, gen *Generator, logger *zap.Logger) *Service {
	return &Service{
		store:  st,
		gen:    gen,
		logger: logger,
	}
}

// Initialize regenerates the rolling auto window and merges it with the
// persisted schedule. Safe to call repeatedly; each call re-derives the
// window from the current clock.
func (s *Service) Initialize() error {
	persisted, err := s.Events()
	if err != nil {
		return fmt.Errorf("failed to load persisted schedule: %w", err)
	}

	fresh := s.gen.Generate()
	merged := Reconcile(persisted, fresh)

	if err := s.store.Set(scheduleKey, merged); err != nil {
		return fmt.Errorf("failed to persist schedule: %w", err)
	}

	s.logger.Info("Schedule refreshed",
		zap.Int("window_days", len(fresh)),
		zap.Int("manual_entries", len(merged)-len(fresh)),
		zap.Int("total_entries", len(merged)))

	return nil
}

// Events returns the full persisted collection, unfiltered. A missing key
// is the create-on-first-use case and yields an empty slice.
func (s *Service) Events() ([]Event, error) {
	var events []Event
	if err := s.store.Get(scheduleKey, &events); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Event{}, nil
		}
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	return events, nil
}

// Upcoming returns the persisted events dated today or later in the
// reference timezone.
func (s *Service) Upcoming() ([]Event, error) {
	events, err := s.Events()
	if err != nil {
		return nil, err
	}

	today := dateutil.FormatISODate(s.gen.clock())
	upcoming := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Date >= today {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}

// Add appends a manual event. The draft's id and origin are assigned here;
// the collection is re-sorted and persisted.
func (s *Service) Add(draft Event) (Event, error) {
	if err := validate(draft); err != nil {
		return Event{}, err
	}

	events, err := s.Events()
	if err != nil {
		return Event{}, err
	}

	draft.ID = uuid.NewString()
	draft.Origin = OriginManual
	if draft.IsClosed {
		draft.StartTime = ""
		draft.EndTime = ""
	}

	events = append(events, draft)
	SortByDate(events)

	if err := s.store.Set(scheduleKey, events); err != nil {
		return Event{}, fmt.Errorf("failed to persist schedule: %w", err)
	}

	s.logger.Info("Schedule event added",
		zap.String("id", draft.ID),
		zap.String("date", draft.Date),
		zap.String("location", draft.Location))

	return draft, nil
}

// Update replaces the event with the matching id. An edited auto entry is
// re-tagged manual (with a fresh id) so the next regeneration cannot
// clobber the hand edit.
func (s *Service) Update(event Event) (Event, error) {
	if err := validate(event); err != nil {
		return Event{}, err
	}

	events, err := s.Events()
	if err != nil {
		return Event{}, err
	}

	idx := -1
	for i := range events {
		if events[i].ID == event.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, event.ID)
	}

	if events[idx].IsAuto() {
		event.ID = uuid.NewString()
	}
	event.Origin = OriginManual
	if event.IsClosed {
		event.StartTime = ""
		event.EndTime = ""
	}

	events[idx] = event
	SortByDate(events)

	if err := s.store.Set(scheduleKey, events); err != nil {
		return Event{}, fmt.Errorf("failed to persist schedule: %w", err)
	}

	s.logger.Info("Schedule event updated",
		zap.String("id", event.ID),
		zap.String("date", event.Date))

	return event, nil
}

// Delete removes the event with the matching id.
func (s *Service) Delete(id string) error {
	events, err := s.Events()
	if err != nil {
		return err
	}

	kept := events[:0]
	found := false
	for _, event := range events {
		if event.ID == id {
			found = true
			continue
		}
		kept = append(kept, event)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}

	if err := s.store.Set(scheduleKey, kept); err != nil {
		return fmt.Errorf("failed to persist schedule: %w", err)
	}

	s.logger.Info("Schedule event deleted", zap.String("id", id))
	return nil
}

// validate checks the fields a hand-entered event must carry. Generated
// events bypass this; the generator only emits well-formed entries.
func validate(event Event) error {
	if event.Date == "" || event.Location == "" {
		return errors.New("date and location are required")
	}
	if _, err := dateutil.ParseISODate(event.Date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", event.Date)
	}
	if !event.IsClosed {
		if !timeOfDayRe.MatchString(event.StartTime) || !timeOfDayRe.MatchString(event.EndTime) {
			return errors.New("start and end times must be HH:MM")
		}
		if event.StartTime > event.EndTime {
			return errors.New("start time must not be after end time")
		}
	}
	return nil
}
