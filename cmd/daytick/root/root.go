// Package root wires the CLI surface: flags, env config, storage and the
// Bubble Tea program.
package root

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"daytick/internal/notify"
	"daytick/internal/scheduler"
	"daytick/internal/storage"
	"daytick/internal/update"
)

const Version = "0.1.0"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "daytick: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dbPath       string
		desktopNotes bool
	)

	cmd := &cobra.Command{
		Use:           "daytick",
		Short:         "Personal task tracker with recurring tasks, alarms and streaks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real env vars always win.
			_ = godotenv.Load()

			cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("desktop-notifications") {
				cfg.DesktopNotifications = desktopNotes
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the sqlite database (default ~/.daytick.db)")
	cmd.Flags().BoolVar(&desktopNotes, "desktop-notifications", false, "send desktop notifications when an alarm fires")

	return cmd
}

func run(cfg update.RuntimeConfig) error {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
	}

	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	tasks, err := store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	theme := store.LoadTheme(ctx)

	var notifier scheduler.Notifier
	if cfg.DesktopNotifications {
		notifier = desktopNotifier{d: notify.ExecDesktop{}}
	}
	alarm := scheduler.NewAlarm(notify.NewBell(os.Stderr), &notify.ExecWakeLock{}, notifier)
	alarm.SetAutoStop(time.Duration(cfg.AlarmAutoStopSeconds) * time.Second)
	defer alarm.Close()

	ticker := scheduler.NewTicker(time.Second, cfg.TickerBuffer)
	ticker.Start()
	defer ticker.Stop()

	m := update.NewModelWithOptions(update.Options{
		Tasks:  tasks,
		Theme:  theme,
		Ticker: ticker,
		Alarm:  alarm,
		Saver:  store,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// desktopNotifier adapts the notify package to the alarm's Notifier.
type desktopNotifier struct {
	d notify.ExecDesktop
}

func (n desktopNotifier) Send(title, body string) error {
	return n.d.Send(notify.Notification{Title: title, Body: body})
}
