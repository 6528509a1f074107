package main

import (
	"github.com/spf13/cobra"

	"github.com/secondchapter/booktruck/internal/daemon"
)

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the daily schedule refresh in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			d := daemon.NewDaemon(
				app.schedule,
				app.cfg.Daemon.RefreshCron,
				app.cfg.Schedule.Location(),
				logger,
			)
			return d.Start()
		},
	}
}
