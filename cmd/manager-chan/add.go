package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

var (
	addNotes    string
	addPriority string
	addTags     []string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new note",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			fmt.Fprintln(os.Stderr, "Note text cannot be empty!")
			os.Exit(1)
		}

		item := core.NewNote(text)
		item.Notes = addNotes
		item.Priority = core.ParsePriority(strings.ToUpper(addPriority))
		item.Tags = core.NormalizeTags(addTags)
		if addDue != "" {
			due, err := time.Parse(core.DateLayout, addDue)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Invalid due date format (use YYYY-MM-DD). Ignoring.")
			} else {
				item.DueDate = &due
			}
		}

		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		app.Store.Add(item)
		saveStore(ctx, app)
		fmt.Printf("New note added! (%s)\n", item.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Long-form notes body (markdown)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: A, B or C")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "Tags (repeatable)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
}
