package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a single note in full",
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

		text, _ := app.Store.Render(n.Text)
		fmt.Printf("id:       %s\n", n.ID)
		fmt.Printf("text:     %s\n", text)
		fmt.Printf("status:   %s\n", n.Status)
		fmt.Printf("priority: %s\n", priorityCell(n.Priority))
		if len(n.Tags) > 0 {
			fmt.Printf("tags:     %s\n", strings.Join(n.Tags, ", "))
		}
		if n.DueDate != nil {
			fmt.Printf("due:      %s\n", n.DueDate.Format(core.DateLayout))
		}
		if n.CreatedAt != nil {
			fmt.Printf("created:  %s\n", n.CreatedAt.Format(core.TimeLayout))
		}
		if n.ModifiedAt != nil {
			fmt.Printf("modified: %s\n", n.ModifiedAt.Format(core.TimeLayout))
		}
		if n.Notes != "" {
			body, _ := app.Store.Render(n.Notes)
			fmt.Printf("\n%s\n", body)
		}
	},
}

// findNote resolves a full or abbreviated ID against the collection.
// An abbreviation must be unambiguous.
func findNote(store *core.Store, id string) (core.NoteItem, error) {
	if n, err := store.Find(id); err == nil {
		return n, nil
	}

	var match core.NoteItem
	found := 0
	for _, n := range store.All() {
		if strings.HasPrefix(n.ID, id) {
			match = n
			found++
		}
	}
	switch found {
	case 0:
		return core.NoteItem{}, core.ErrNotFound
	case 1:
		return match, nil
	default:
		return core.NoteItem{}, errors.New("ambiguous id prefix")
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
