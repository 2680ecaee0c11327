package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	managerchan "github.com/DevlopRishi/manager-chan"
	"github.com/DevlopRishi/manager-chan/pkg/core"
)

var (
	verbose    bool
	dataDir    string
	dontForget bool
	noArt      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "manager-chan",
	Short: "Manager-chan's forgetful notes: a task list that loses things",
	Long: `Manager-chan keeps your notes in a plain JSON file and tries her best.
Old notes are sometimes forgotten on load, text sometimes picks up a typo
on display, and very rarely she misplaces the whole file. Use
--dont-forget if you need her to try EXTRA hard today.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "Directory holding the notes and settings files")
	rootCmd.PersistentFlags().BoolVar(&dontForget, "dont-forget", false, "Disable all forgetfulness for this session")
	rootCmd.PersistentFlags().BoolVar(&noArt, "no-art", false, "Suppress Manager-chan's ASCII art")
}

// openApp wires the application for the configured data directory.
func openApp() *managerchan.App {
	app, err := managerchan.Open(dataDir,
		managerchan.WithLogger(slog.Default()),
		managerchan.WithDontForget(dontForget),
		managerchan.WithSettingsAutoSave(true),
	)
	if err != nil {
		fatal("Error opening data directory", err)
	}
	return app
}

// loadStore populates the collection and relays Manager-chan's verdict.
func loadStore(ctx context.Context, app *managerchan.App) {
	status, mood := app.Store.Load(ctx)
	report(app, status, mood)
}

// saveStore persists the collection and relays the result. A failed save
// keeps the in-memory collection intact, so the process still exits zero;
// the status line carries the error.
func saveStore(ctx context.Context, app *managerchan.App) {
	status, mood := app.Store.Save(ctx)
	report(app, status, mood)
}

func report(app *managerchan.App, status string, mood core.Mood) {
	if !noArt && app.Settings.ShowManagerChan() {
		fmt.Println(art(mood))
	}
	fmt.Println(status)
}
