// Package volunteer manages the volunteer roster behind the dashboard:
// the persisted list, per-volunteer status classification, the KPI rollup
// and the anonymized export.
package volunteer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
	"github.com/secondchapter/booktruck/pkg/dateutil"
)

const volunteersKey = "volunteers"

// Volunteer is one roster entry. RecentActivity is an ISO date string.
type Volunteer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Hours          int    `json:"hours"`
	Location       string `json:"location"`
	RecentActivity string `json:"recentActivity"`
	TasksCompleted int    `json:"tasksCompleted"`
}

// Status classifies a volunteer by logged hours, with a task suggestion
// for the coordinator.
type Status struct {
	Label      string `json:"label"`
	Suggestion string `json:"suggestion"`
}

// KPIs is the dashboard rollup.
type KPIs struct {
	AvgHours       float64 `json:"avgHours"`
	TotalDonations int     `json:"totalDonations"`
	ActiveThisWeek int     `json:"activeThisWeek"`
}

// Service owns the persisted roster.
type Service struct {
	store  store.Store
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a roster service. A nil now falls back to time.Now.
func NewService(st store.Store, now func() time.Time, logger *zap.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, now: now, logger: logger}
}

// Seed writes the sample roster on first use; existing data is left alone.
func (s *Service) Seed() error {
	var existing []Volunteer
	err := s.store.Get(volunteersKey, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check roster: %w", err)
	}

	if err := s.store.Set(volunteersKey, sampleVolunteers); err != nil {
		return fmt.Errorf("failed to seed roster: %w", err)
	}
	s.logger.Info("Sample roster seeded", zap.Int("volunteers", len(sampleVolunteers)))
	return nil
}

// List returns the roster; a missing key yields an empty slice.
func (s *Service) List() ([]Volunteer, error) {
	var volunteers []Volunteer
	if err := s.store.Get(volunteersKey, &volunteers); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Volunteer{}, nil
		}
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return volunteers, nil
}

// Add registers a new volunteer with zeroed hours and tasks and today's
// date as their most recent activity.
func (s *Service) Add(name, email, location string) (Volunteer, error) {
	if name == "" || email == "" || location == "" {
		return Volunteer{}, errors.New("name, email and location are required")
	}

	volunteers, err := s.List()
	if err != nil {
		return Volunteer{}, err
	}

	added := Volunteer{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Location:       location,
		RecentActivity: dateutil.FormatISODate(s.now()),
	}
	volunteers = append(volunteers, added)

	if err := s.store.Set(volunteersKey, volunteers); err != nil {
		return Volunteer{}, fmt.Errorf("failed to persist roster: %w", err)
	}

	s.logger.Info("Volunteer added",
		zap.String("id", added.ID),
		zap.String("name", added.Name),
		zap.String("location", added.Location))
	return added, nil
}

// StatusFor classifies a volunteer by logged hours.
func StatusFor(hours int) Status {
	switch {
	case hours < 5:
		return Status{Label: "Needs Help", Suggestion: "Needs extra help organizing donations."}
	case hours <= 15:
		return Status{Label: "Steady", Suggestion: "Steady contributor, assign regular shelving tasks."}
	default:
		return Status{Label: "High Impact", Suggestion: "High impact, assign outreach event responsibilities."}
	}
}

// ComputeKPIs builds the dashboard rollup. The donation count comes from
// the caller so the roster stays decoupled from the donation log.
func (s *Service) ComputeKPIs(totalDonations int) (KPIs, error) {
	volunteers, err := s.List()
	if err != nil {
		return KPIs{}, err
	}

	kpis := KPIs{TotalDonations: totalDonations}
	if len(volunteers) == 0 {
		return kpis, nil
	}

	sum := 0
	weekAgo := dateutil.StartOfDay(s.now()).AddDate(0, 0, -7)
	for _, v := range volunteers {
		sum += v.Hours
		activity, err := dateutil.ParseISODate(v.RecentActivity)
		if err != nil {
			continue
		}
		if !activity.Before(weekAgo) {
			kpis.ActiveThisWeek++
		}
	}
	kpis.AvgHours = float64(sum) / float64(len(volunteers))

	return kpis, nil
}

// anonymized strips personal fields for the dashboard export.
type anonymized struct {
	Hours          int    `json:"hours"`
	Location       string `json:"location"`
	TasksCompleted int    `json:"tasksCompleted"`
}

// ExportAnonymized writes the roster as indented JSON with names and
// emails removed.
func (s *Service) ExportAnonymized(w io.Writer) error {
	volunteers, err := s.List()
	if err != nil {
		return err
	}

	rows := make([]anonymized, 0, len(volunteers))
	for _, v := range volunteers {
		rows = append(rows, anonymized{
			Hours:          v.Hours,
			Location:       v.Location,
			TasksCompleted: v.TasksCompleted,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to export roster: %w", err)
	}
	return nil
}

var sampleVolunteers = []Volunteer{
	{ID: "1", Name: "Sarah Chen", Hours: 18, Location: "Downtown", RecentActivity: "2025-11-20", TasksCompleted: 24},
	{ID: "2", Name: "Marcus Johnson", Hours: 12, Location: "Westside", RecentActivity: "2025-11-21", TasksCompleted: 16},
	{ID: "3", Name: "Elena Rodriguez", Hours: 4, Location: "Eastside", RecentActivity: "2025-11-19", TasksCompleted: 5},
	{ID: "4", Name: "David Park", Hours: 22, Location: "North End", RecentActivity: "2025-11-22", TasksCompleted: 31},
	{ID: "5", Name: "Aisha Williams", Hours: 8, Location: "South Bay", RecentActivity: "2025-11-18", TasksCompleted: 11},
	{ID: "6", Name: "James O'Connor", Hours: 15, Location: "Downtown", RecentActivity: "2025-11-21", TasksCompleted: 19},
}
