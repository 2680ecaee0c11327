package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note permanently",
	Long:  `Delete removes a note from the collection. This can't be undone (probably)!`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		n, err := findNote(app.Store, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete note (already gone?): %v\n", err)
			os.Exit(1)
		}

		if !app.Store.Delete(n.ID) {
			fmt.Fprintln(os.Stderr, "Failed to delete note (already gone?).")
			os.Exit(1)
		}
		saveStore(ctx, app)
		fmt.Println("Note deleted!")
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
