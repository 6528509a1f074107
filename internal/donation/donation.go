// Package donation records book donation intake and renders the drop-off
// receipt.
package donation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
	"github.com/secondchapter/booktruck/pkg/dateutil"
)

const donationsKey = "donations"

// DefaultCondition is the intake form's preselected book condition.
const DefaultCondition = "Gently Used"

// Donation is one intake record. Date is an ISO date string.
type Donation struct {
	ID        string `json:"id"`
	DonorName string `json:"donorName"`
	Email     string `json:"email"`
	BookTitle string `json:"bookTitle"`
	Condition string `json:"condition"`
	Notes     string `json:"notes"`
	Date      string `json:"date"`
}

// Service owns the persisted donation log.
type Service struct {
	store  store.Store
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a donation service. A nil now falls back to time.Now.
func NewService(st store.Store, now func() time.Time, logger *zap.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, now: now, logger: logger}
}

// List returns the donation log; a missing key yields an empty slice.
func (s *Service) List() ([]Donation, error) {
	var donations []Donation
	if err := s.store.Get(donationsKey, &donations); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Donation{}, nil
		}
		return nil, fmt.Errorf("failed to read donations: %w", err)
	}
	return donations, nil
}

// Count returns the number of recorded donations.
func (s *Service) Count() (int, error) {
	donations, err := s.List()
	if err != nil {
		return 0, err
	}
	return len(donations), nil
}

// Add appends an intake record dated today. Donor name, email and book
// title are required; an empty condition falls back to DefaultCondition.
func (s *Service) Add(donorName, email, bookTitle, condition, notes string) (Donation, error) {
	if donorName == "" || email == "" || bookTitle == "" {
		return Donation{}, errors.New("donor name, email and book title are required")
	}
	if condition == "" {
		condition = DefaultCondition
	}

	donations, err := s.List()
	if err != nil {
		return Donation{}, err
	}

	added := Donation{
		ID:        uuid.NewString(),
		DonorName: donorName,
		Email:     email,
		BookTitle: bookTitle,
		Condition: condition,
		Notes:     notes,
		Date:      dateutil.FormatISODate(s.now()),
	}
	donations = append(donations, added)

	if err := s.store.Set(donationsKey, donations); err != nil {
		return Donation{}, fmt.Errorf("failed to persist donations: %w", err)
	}

	s.logger.Info("Donation recorded",
		zap.String("id", added.ID),
		zap.String("book", added.BookTitle),
		zap.String("condition", added.Condition))
	return added, nil
}

// Receipt renders the plain-text drop-off receipt for a donation.
func Receipt(d Donation) string {
	var b strings.Builder
	b.WriteString("DONATION RECEIPT\n")
	b.WriteString("The Second Chapter - Mobile Book Truck\n\n")
	fmt.Fprintf(&b, "Donor: %s\n", d.DonorName)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Book: %s\n", d.BookTitle)
	fmt.Fprintf(&b, "Condition: %s\n", d.Condition)
	fmt.Fprintf(&b, "Date: %s\n", d.Date)
	b.WriteString("\nThank you for your generous donation!\n")
	return b.String()
}
