package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/secondchapter/booktruck/internal/auth"
	"github.com/secondchapter/booktruck/internal/catalog"
	"github.com/secondchapter/booktruck/internal/config"
	"github.com/secondchapter/booktruck/internal/donation"
	"github.com/secondchapter/booktruck/internal/schedule"
	"github.com/secondchapter/booktruck/internal/store"
	"github.com/secondchapter/booktruck/internal/volunteer"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "booktruck",
		Short: "The Second Chapter mobile book truck",
		Long:  "Manage the community book truck: holiday-aware stop schedule, donated-book catalog, volunteer roster and donation intake",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Daemon.LogFile != "" {
				logger, err = initFileLogger(cfg.Daemon.LogFile, cfg.Daemon.LogLevel)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(booksCmd())
	rootCmd.AddCommand(quizCmd())
	rootCmd.AddCommand(volunteersCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(donationsCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(daemonCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the store and the services over it for one command run.
type app struct {
	cfg        *config.Config
	store      store.Store
	schedule   *schedule.Service
	catalog    *catalog.Service
	volunteers *volunteer.Service
	donations  *donation.Service
	auth       *auth.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dataDir, err := cfg.Storage.DataDir()
	if err != nil {
		return nil, err
	}

	var st store.Store
	switch cfg.Storage.Driver {
	case "sqlite":
		st, err = store.NewSQLiteStore(filepath.Join(dataDir, "booktruck.db"), logger)
	default:
		st, err = store.NewFileStore(dataDir, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Driver, err)
	}

	loc := cfg.Schedule.Location()
	clock := func() time.Time { return time.Now().In(loc) }
	gen := schedule.NewGenerator(clock, cfg.Schedule.Locations, cfg.Schedule.DaysAhead)

	return &app{
		cfg:        cfg,
		store:      st,
		schedule:   schedule.NewService(st, gen, logger),
		catalog:    catalog.NewService(st, logger),
		volunteers: volunteer.NewService(st, clock, logger),
		donations:  donation.NewService(st, clock, logger),
		auth:       auth.NewService(st, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logger.Warn("Failed to close store", zap.Error(err))
	}
}

// requireAdmin fails the command unless an admin session is active.
func (a *app) requireAdmin() error {
	if _, err := a.auth.RequireAdmin(); err != nil {
		return fmt.Errorf("admin access required: %w (try 'booktruck login')", err)
	}
	return nil
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed sample data and generate the first schedule window",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.catalog.Seed(); err != nil {
				return err
			}
			if err := app.volunteers.Seed(); err != nil {
				return err
			}
			if err := app.auth.Seed(); err != nil {
				return err
			}
			if err := app.schedule.Initialize(); err != nil {
				return err
			}

			events, err := app.schedule.Events()
			if err != nil {
				return err
			}
			fmt.Printf("Initialized: %d schedule entries, sample catalog, roster and accounts\n", len(events))
			return nil
		},
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
