package catalog

import (
	"errors"
	"fmt"

	"github.com/secondchapter/booktruck/internal/store"
)

// QuizQuestion is one multiple-choice question attached to a book.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
}

// QuizResult records a completed quiz attempt for a book.
type QuizResult struct {
	BookID         string `json:"bookId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Completed      bool   `json:"completed"`
}

// Quiz returns the questions for a book; books without a quiz yield an
// empty slice.
func (s *Service) Quiz(bookID string) ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := s.store.Get(quizKey(bookID), &questions); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []QuizQuestion{}, nil
		}
		return nil, fmt.Errorf("failed to read quiz: %w", err)
	}
	return questions, nil
}

// Grade scores the given answers (indexes into each question's options)
// against the book's quiz, persists the result and returns it. The number
// of answers must match the number of questions.
func (s *Service) Grade(bookID string, answers []int) (QuizResult, error) {
	questions, err := s.Quiz(bookID)
	if err != nil {
		return QuizResult{}, err
	}
	if len(questions) == 0 {
		return QuizResult{}, fmt.Errorf("no quiz for book %s", bookID)
	}
	if len(answers) != len(questions) {
		return QuizResult{}, fmt.Errorf("got %d answers for %d questions", len(answers), len(questions))
	}

	score := 0
	for i, question := range questions {
		if answers[i] == question.CorrectAnswer {
			score++
		}
	}

	result := QuizResult{
		BookID:         bookID,
		Score:          score,
		TotalQuestions: len(questions),
		Completed:      true,
	}
	if err := s.store.Set(quizResultKey(bookID), result); err != nil {
		return QuizResult{}, fmt.Errorf("failed to persist quiz result: %w", err)
	}

	return result, nil
}

// ResultFor returns the persisted quiz result for a book, or nil when the
// quiz has not been taken.
func (s *Service) ResultFor(bookID string) (*QuizResult, error) {
	var result QuizResult
	if err := s.store.Get(quizResultKey(bookID), &result); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read quiz result: %w", err)
	}
	return &result, nil
}

func (s *Service) seedQuiz() error {
	if err := s.store.Set(quizKey("1"), sampleQuiz); err != nil {
		return fmt.Errorf("failed to seed quiz: %w", err)
	}
	return nil
}

func quizKey(bookID string) string {
	return "quiz-" + bookID
}

func quizResultKey(bookID string) string {
	return "quiz-result-" + bookID
}

var sampleQuiz = []QuizQuestion{
	{
		ID:            "q1",
		Question:      "What is the central theme of The Midnight Library?",
		Options:       []string{"Time travel", "Parallel lives and choices", "Space exploration", "Detective work"},
		CorrectAnswer: 1,
	},
	{
		ID:            "q2",
		Question:      "Who is the protagonist of the story?",
		Options:       []string{"Nora Seed", "Mrs. Elm", "Ash", "Izzy"},
		CorrectAnswer: 0,
	},
	{
		ID:            "q3",
		Question:      "What does each book in the library represent?",
		Options:       []string{"A genre", "A different life possibility", "A memory", "A lesson"},
		CorrectAnswer: 1,
	},
	{
		ID:            "q4",
		Question:      "What is Mrs. Elm's role?",
		Options:       []string{"Antagonist", "Librarian guide", "Best friend", "Family member"},
		CorrectAnswer: 1,
	},
	{
		ID:            "q5",
		Question:      "What is the main setting of the story?",
		Options:       []string{"A school", "The Midnight Library", "A hospital", "A bookstore"},
		CorrectAnswer: 1,
	},
}
