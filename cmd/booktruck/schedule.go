package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secondchapter/booktruck/internal/schedule"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the truck stop schedule",
	}

	cmd.AddCommand(scheduleRefreshCmd())
	cmd.AddCommand(scheduleListCmd())
	cmd.AddCommand(scheduleAddCmd())
	cmd.AddCommand(scheduleUpdateCmd())
	cmd.AddCommand(scheduleDeleteCmd())
	cmd.AddCommand(scheduleExportCmd())

	return cmd
}

func scheduleRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Regenerate the rolling window, keeping manual entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.schedule.Initialize(); err != nil {
				return err
			}

			events, err := app.schedule.Events()
			if err != nil {
				return err
			}
			fmt.Printf("Schedule refreshed: %d entries\n", len(events))
			return nil
		},
	}
}

func scheduleListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show upcoming truck stops",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			var events []schedule.Event
			if all {
				events, err = app.schedule.Events()
			} else {
				events, err = app.schedule.Upcoming()
			}
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No schedule entries. Run 'booktruck schedule refresh' first.")
				return nil
			}

			for _, e := range events {
				printEvent(e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include past entries")

	return cmd
}

func printEvent(e schedule.Event) {
	tag := ""
	if !e.IsAuto() {
		tag = "  [manual]"
	}
	if e.IsClosed {
		fmt.Printf("%s  %s%s\n", e.Date, e.Location, tag)
		return
	}
	fmt.Printf("%s  %s-%s  %s%s\n", e.Date, e.StartTime, e.EndTime, e.Location, tag)
}

func scheduleAddCmd() *cobra.Command {
	var draft schedule.Event

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual stop (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.requireAdmin(); err != nil {
				return err
			}

			added, err := app.schedule.Add(draft)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s\n", added.ID)
			printEvent(added)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Date, "date", "", "Stop date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&draft.Location, "location", "", "Stop location")
	cmd.Flags().StringVar(&draft.StartTime, "start", "16:00", "Opening time (HH:MM)")
	cmd.Flags().StringVar(&draft.EndTime, "end", "20:00", "Closing time (HH:MM)")
	cmd.Flags().BoolVar(&draft.IsClosed, "closed", false, "Mark the day as closed")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func scheduleUpdateCmd() *cobra.Command {
	var event schedule.Event

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a stop; edited auto entries survive future refreshes (admin)",
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

			event.ID = args[0]
			updated, err := app.schedule.Update(event)
			if err != nil {
				return err
			}
			fmt.Printf("Updated (new id %s)\n", updated.ID)
			printEvent(updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&event.Date, "date", "", "Stop date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&event.Location, "location", "", "Stop location")
	cmd.Flags().StringVar(&event.StartTime, "start", "", "Opening time (HH:MM)")
	cmd.Flags().StringVar(&event.EndTime, "end", "", "Closing time (HH:MM)")
	cmd.Flags().BoolVar(&event.IsClosed, "closed", false, "Mark the day as closed")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func scheduleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stop (admin)",
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

			if err := app.schedule.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func scheduleExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as an iCalendar file",
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

			if err := app.schedule.ExportICS(w); err != nil {
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
