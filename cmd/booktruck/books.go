package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secondchapter/booktruck/internal/catalog"
)

func booksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse the donated-book catalog",
	}

	cmd.AddCommand(booksListCmd())
	cmd.AddCommand(booksShowCmd())
	cmd.AddCommand(booksCompleteCmd())
	cmd.AddCommand(booksCartCmd())

	return cmd
}

func booksListCmd() *cobra.Command {
	var genre, condition string
	var featured bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			// Empty flags fall back to the persisted browse preferences
			if !cmd.Flags().Changed("genre") {
				genre = app.catalog.SelectedGenre()
			} else if err := app.catalog.SetSelectedGenre(genre); err != nil {
				return err
			}
			if !cmd.Flags().Changed("condition") {
				condition = app.catalog.SelectedCondition()
			} else if err := app.catalog.SetSelectedCondition(condition); err != nil {
				return err
			}

			var books []catalog.Book
			if featured {
				books, err = app.catalog.Featured()
			} else {
				books, err = app.catalog.Filter(genre, condition)
			}
			if err != nil {
				return err
			}

			if len(books) == 0 {
				fmt.Printf("No books match genre=%q condition=%q. Run 'booktruck init' to seed samples.\n", genre, condition)
				return nil
			}
			for _, b := range books {
				printBook(app, b)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Filter by genre (empty matches all)")
	cmd.Flags().StringVar(&condition, "condition", "", "Filter by condition (empty matches all)")
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured books")

	return cmd
}

func printBook(app *app, b catalog.Book) {
	mark := " "
	if done, err := app.catalog.Completed(b.ID); err == nil && done {
		mark = "x"
	}
	star := ""
	if b.Featured {
		star = " *"
	}
	fmt.Printf("[%s] %s  %s (%s, %s)%s\n", mark, b.ID, b.Title, b.Genre, b.Condition, star)
}

func booksShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			b, err := app.catalog.BookByID(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s, %s)\n", b.Title, b.Genre, b.Condition)
			fmt.Println(b.Description)
			if b.ReadingTime > 0 {
				fmt.Printf("Reading time: %d min\n", b.ReadingTime)
			}
			if b.Transcript != "" {
				fmt.Printf("Sample: %s\n", b.Transcript)
			}
			return nil
		},
	}
}

func booksCompleteCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a book as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.catalog.SetCompleted(args[0], !undo); err != nil {
				return err
			}
			if undo {
				fmt.Printf("Cleared completion for %s\n", args[0])
			} else {
				fmt.Printf("Marked %s as read\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the completion mark")

	return cmd
}

func booksCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the pickup cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			cart, err := app.catalog.Cart()
			if err != nil {
				return err
			}
			if len(cart) == 0 {
				fmt.Println("Cart is empty")
				return nil
			}
			for _, id := range cart {
				b, err := app.catalog.BookByID(id)
				if err != nil {
					fmt.Printf("%s  (no longer in catalog)\n", id)
					continue
				}
				fmt.Printf("%s  %s\n", b.ID, b.Title)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Add a book to the pickup cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.catalog.AddToCart(args[0]); err != nil {
				return err
			}
			fmt.Printf("Added %s to cart\n", args[0])
			return nil
		},
	})

	return cmd
}
