package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// status and priority cycle through their enumerations:
// Todo > In Progress > Done > Archived > Todo, and none > A > B > C > none.

var statusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Cycle a note's status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		n, err := findNote(app.Store, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hmm, I can't find that note: %v\n", err)
			os.Exit(1)
		}

		n.Status = n.Status.Next()
		app.Store.Update(n)
		saveStore(ctx, app)
		fmt.Printf("Status changed to %s\n", n.Status)
	},
}

var priorityCmd = &cobra.Command{
	Use:   "priority [id]",
	Short: "Cycle a note's priority",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		n, err := findNote(app.Store, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hmm, I can't find that note: %v\n", err)
			os.Exit(1)
		}

		n.Priority = n.Priority.Next()
		app.Store.Update(n)
		saveStore(ctx, app)
		fmt.Printf("Priority changed to %s\n", priorityCell(n.Priority))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(priorityCmd)
}
