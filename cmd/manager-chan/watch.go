package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/adapters/fs"
	lcadapter "github.com/DevlopRishi/manager-chan/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report external changes to the notes file until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app := openApp()
		repo := fs.NewRepository(fs.Config{Path: app.NotesPath})
		events, err := repo.Watch(ctx)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		source := lcadapter.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting event source", err)
		}

		fmt.Printf("Watching %s (ctrl-c to stop)\n", app.NotesPath)
		for ev := range source.Events() {
			fmt.Println(ev)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
