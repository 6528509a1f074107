package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show volunteer impact KPIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			totalDonations, err := app.donations.Count()
			if err != nil {
				return err
			}
			kpis, err := app.volunteers.ComputeKPIs(totalDonations)
			if err != nil {
				return err
			}

			fmt.Printf("Avg hours/volunteer: %.1f\n", kpis.AvgHours)
			fmt.Printf("Total donations:     %d\n", kpis.TotalDonations)
			fmt.Printf("Active this week:    %d\n", kpis.ActiveThisWeek)
			return nil
		},
	}

	cmd.AddCommand(dashboardExportCmd())

	return cmd
}

func dashboardExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export anonymized roster data as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := app.volunteers.ExportAnonymized(w); err != nil {
				return err
			}
			if output != "" {
				fmt.Printf("Wrote %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}
