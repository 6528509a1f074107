package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func quizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the comprehension quiz for a book",
	}

	cmd.AddCommand(quizShowCmd())
	cmd.AddCommand(quizTakeCmd())
	cmd.AddCommand(quizResultCmd())

	return cmd
}

func quizShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <book-id>",
		Short: "Print the quiz questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			questions, err := app.catalog.Quiz(args[0])
			if err != nil {
				return err
			}
			if len(questions) == 0 {
				fmt.Println("No quiz for this book")
				return nil
			}

			for i, q := range questions {
				fmt.Printf("%d. %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					fmt.Printf("   %d) %s\n", j+1, opt)
				}
			}
			return nil
		},
	}
}

func quizTakeCmd() *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "take <book-id>",
		Short: "Answer the quiz and record the score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			questions, err := app.catalog.Quiz(args[0])
			if err != nil {
				return err
			}
			if len(questions) == 0 {
				return fmt.Errorf("no quiz for book %s", args[0])
			}

			var answers []int
			if answersFlag != "" {
				answers, err = parseAnswers(answersFlag, len(questions))
				if err != nil {
					return err
				}
			} else {
				reader := bufio.NewReader(os.Stdin)
				for i, q := range questions {
					fmt.Printf("%d. %s\n", i+1, q.Question)
					for j, opt := range q.Options {
						fmt.Printf("   %d) %s\n", j+1, opt)
					}
					choice, err := readChoice(reader, len(q.Options))
					if err != nil {
						return err
					}
					answers = append(answers, choice)
				}
			}

			result, err := app.catalog.Grade(args[0], answers)
			if err != nil {
				return err
			}
			fmt.Printf("Score: %d/%d\n", result.Score, result.TotalQuestions)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "Comma-separated option numbers, e.g. 2,1,2,2,2")

	return cmd
}

func quizResultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "result <book-id>",
		Short: "Show the recorded quiz score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.catalog.ResultFor(args[0])
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println("Quiz not taken yet")
				return nil
			}
			fmt.Printf("Score: %d/%d\n", result.Score, result.TotalQuestions)
			return nil
		},
	}
}

// parseAnswers converts 1-based option numbers to 0-based indexes.
func parseAnswers(raw string, want int) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("got %d answers for %d questions", len(parts), want)
	}

	answers := make([]int, 0, want)
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		answers = append(answers, n-1)
	}
	return answers, nil
}

func readChoice(reader *bufio.Reader, options int) (int, error) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= options {
			return n - 1, nil
		}
		fmt.Printf("Enter a number between 1 and %d\n", options)
	}
}
