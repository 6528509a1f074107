package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secondchapter/booktruck/internal/volunteer"
)

func volunteersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volunteers",
		Short: "Manage the volunteer roster",
	}

	cmd.AddCommand(volunteersListCmd())
	cmd.AddCommand(volunteersAddCmd())

	return cmd
}

func volunteersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the roster with status classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			volunteers, err := app.volunteers.List()
			if err != nil {
				return err
			}
			if len(volunteers) == 0 {
				fmt.Println("No volunteers. Run 'booktruck init' to seed samples.")
				return nil
			}

			for _, v := range volunteers {
				status := volunteer.StatusFor(v.Hours)
				fmt.Printf("%-18s %3dh  %-14s last active %s  [%s]\n",
					v.Name, v.Hours, v.Location, v.RecentActivity, status.Label)
				fmt.Printf("    %s\n", status.Suggestion)
			}
			return nil
		},
	}
}

func volunteersAddCmd() *cobra.Command {
	var email, location string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a volunteer (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.requireAdmin(); err != nil {
				return err
			}

			added, err := app.volunteers.Add(args[0], email, location)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", added.Name, added.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&location, "location", "", "Home stop location")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}
