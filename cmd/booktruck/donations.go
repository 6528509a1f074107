package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secondchapter/booktruck/internal/donation"
)

func donationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "Record and review book donations",
	}

	cmd.AddCommand(donationsAddCmd())
	cmd.AddCommand(donationsListCmd())

	return cmd
}

func donationsAddCmd() *cobra.Command {
	var donor, email, title, condition, notes string
	var receipt bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a donation drop-off",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			added, err := app.donations.Add(donor, email, title, condition, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded donation %s\n", added.ID)
			if receipt {
				fmt.Println()
				fmt.Print(donation.Receipt(added))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&donor, "donor", "", "Donor name")
	cmd.Flags().StringVar(&email, "email", "", "Donor email")
	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&condition, "condition", donation.DefaultCondition, "Book condition")
	cmd.Flags().StringVar(&notes, "notes", "", "Intake notes")
	cmd.Flags().BoolVar(&receipt, "receipt", false, "Print the drop-off receipt")
	_ = cmd.MarkFlagRequired("donor")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func donationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the donation log",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			donations, err := app.donations.List()
			if err != nil {
				return err
			}
			if len(donations) == 0 {
				fmt.Println("No donations recorded")
				return nil
			}
			for _, d := range donations {
				fmt.Printf("%s  %s  %q (%s) from %s\n", d.Date, d.ID, d.BookTitle, d.Condition, d.DonorName)
			}
			return nil
		},
	}
}
