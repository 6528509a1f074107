// Package catalog manages the donated-book catalog and the per-book quiz
// feature: browsing, genre/condition filtering, reading completion, the
// pickup cart and persisted browse preferences.
package catalog

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
)

const (
	booksKey     = "books"
	cartKey      = "cart"
	genreKey     = "selectedGenre"
	conditionKey = "selectedCondition"

	// DefaultGenre and DefaultCondition are the browse preferences used
	// before a visitor picks their own.
	DefaultGenre     = "Fiction"
	DefaultCondition = "New"
)

// ErrBookNotFound is returned when a lookup names an unknown book id.
var ErrBookNotFound = errors.New("book not found")

// Book is one catalog entry.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Condition   string `json:"condition"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured,omitempty"`
	ReadingTime int    `json:"readingTime,omitempty"`
	AudioSample string `json:"audioSample,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
}

// Service owns the persisted catalog state.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a catalog service backed by the given store
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Seed writes the sample catalog and the sample quiz on first use; existing
// data is left alone.
func (s *Service) Seed() error {
	var existing []Book
	err := s.store.Get(booksKey, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check catalog: %w", err)
	}

	if err := s.store.Set(booksKey, sampleBooks); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if err := s.seedQuiz(); err != nil {
		return err
	}

	s.logger.Info("Sample catalog seeded", zap.Int("books", len(sampleBooks)))
	return nil
}

// Books returns the full catalog; a missing key yields an empty slice.
func (s *Service) Books() ([]Book, error) {
	var books []Book
	if err := s.store.Get(booksKey, &books); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return books, nil
}

// BookByID returns the catalog entry with the given id.
func (s *Service) BookByID(id string) (Book, error) {
	books, err := s.Books()
	if err != nil {
		return Book{}, err
	}
	for _, book := range books {
		if book.ID == id {
			return book, nil
		}
	}
	return Book{}, fmt.Errorf("%w: %s", ErrBookNotFound, id)
}

// Filter returns catalog entries matching the given genre and condition;
// an empty filter value matches everything.
func (s *Service) Filter(genre, condition string) ([]Book, error) {
	books, err := s.Books()
	if err != nil {
		return nil, err
	}

	matched := []Book{}
	for _, book := range books {
		if genre != "" && book.Genre != genre {
			continue
		}
		if condition != "" && book.Condition != condition {
			continue
		}
		matched = append(matched, book)
	}
	return matched, nil
}

// Featured returns the catalog entries flagged as featured.
func (s *Service) Featured() ([]Book, error) {
	books, err := s.Books()
	if err != nil {
		return nil, err
	}

	featured := []Book{}
	for _, book := range books {
		if book.Featured {
			featured = append(featured, book)
		}
	}
	return featured, nil
}

// SetCompleted marks or clears the reading-completion flag for a book.
func (s *Service) SetCompleted(bookID string, completed bool) error {
	if _, err := s.BookByID(bookID); err != nil {
		return err
	}
	value := "false"
	if completed {
		value = "true"
	}
	if err := s.store.Set(completionKey(bookID), value); err != nil {
		return fmt.Errorf("failed to persist completion: %w", err)
	}
	return nil
}

// Completed reports whether the book is marked as read.
func (s *Service) Completed(bookID string) (bool, error) {
	var value string
	if err := s.store.Get(completionKey(bookID), &value); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read completion: %w", err)
	}
	return value == "true", nil
}

// Cart returns the pickup cart: an ordered list of book ids.
func (s *Service) Cart() ([]string, error) {
	var cart []string
	if err := s.store.Get(cartKey, &cart); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	return cart, nil
}

// AddToCart adds a book to the pickup cart; a duplicate add is a no-op.
func (s *Service) AddToCart(bookID string) error {
	if _, err := s.BookByID(bookID); err != nil {
		return err
	}

	cart, err := s.Cart()
	if err != nil {
		return err
	}
	for _, id := range cart {
		if id == bookID {
			return nil
		}
	}

	cart = append(cart, bookID)
	if err := s.store.Set(cartKey, cart); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// SelectedGenre returns the persisted browse genre preference.
func (s *Service) SelectedGenre() string {
	return s.preference(genreKey, DefaultGenre)
}

// SetSelectedGenre persists the browse genre preference.
func (s *Service) SetSelectedGenre(genre string) error {
	return s.store.Set(genreKey, genre)
}

// SelectedCondition returns the persisted browse condition preference.
func (s *Service) SelectedCondition() string {
	return s.preference(conditionKey, DefaultCondition)
}

// SetSelectedCondition persists the browse condition preference.
func (s *Service) SetSelectedCondition(condition string) error {
	return s.store.Set(conditionKey, condition)
}

func (s *Service) preference(key, fallback string) string {
	var value string
	if err := s.store.Get(key, &value); err != nil || value == "" {
		return fallback
	}
	return value
}

func completionKey(bookID string) string {
	return "book-completed-" + bookID
}

var sampleBooks = []Book{
	{
		ID:          "1",
		Title:       "The Midnight Library",
		Description: "A dazzling novel about all the choices that go into a life well lived.",
		Genre:       "Fiction",
		Condition:   "New",
		Image:       "/placeholder.svg",
		Featured:    true,
		ReadingTime: 5,
		AudioSample: "/audio/sample.mp3",
		Transcript:  "Between life and death there is a library...",
	},
	{
		ID:          "2",
		Title:       "Project Hail Mary",
		Description: "A lone astronaut must save the earth from disaster in this stunning novel.",
		Genre:       "Sci-Fi",
		Condition:   "Gently Used",
		Image:       "/placeholder.svg",
		ReadingTime: 6,
	},
	{
		ID:          "3",
		Title:       "The Thursday Murder Club",
		Description: "Four unlikely friends meet weekly to investigate unsolved killings.",
		Genre:       "Mystery",
		Condition:   "New",
		Image:       "/placeholder.svg",
		ReadingTime: 5,
	},
}
