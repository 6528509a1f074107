// Package daemon runs the schedule refresh on a cron timetable.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/schedule"
)

// Daemon represents the daemon process
type Daemon struct {
	scheduler *schedule.Service
	cronSpec  string
	location  *time.Location
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewDaemon creates a new daemon instance. The cron spec fires in the
// given location.
func NewDaemon(scheduler *schedule.Service, cronSpec string, location *time.Location, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		scheduler: scheduler,
		cronSpec:  cronSpec,
		location:  location,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start refreshes the schedule once, then blocks running the cron loop
// until a signal or Stop.
func (d *Daemon) Start() error {
	d.logger.Info("Daemon started",
		zap.String("cron", d.cronSpec),
		zap.String("timezone", d.location.String()))

	// Refresh immediately so a freshly booted daemon never serves a
	// stale window
	d.refresh()

	c := cron.New(cron.WithLocation(d.location))
	if _, err := c.AddFunc(d.cronSpec, d.refresh); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", d.cronSpec, err)
	}
	c.Start()
	defer c.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-d.ctx.Done():
		d.logger.Info("Daemon stopped")
	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))
	}
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

func (d *Daemon) refresh() {
	start := time.Now()
	if err := d.scheduler.Initialize(); err != nil {
		d.logger.Error("Schedule refresh failed", zap.Error(err))
		return
	}
	d.logger.Info("Schedule refreshed", zap.Duration("took", time.Since(start)))
}
