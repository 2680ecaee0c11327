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
	editText     string
	editNotes    string
	editStatus   string
	editPriority string
	editTags     []string
	editDue      string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit fields of an existing note",
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

		if cmd.Flags().Changed("text") {
			text := strings.TrimSpace(editText)
			if text == "" {
				fmt.Fprintln(os.Stderr, "Note text cannot be empty!")
				os.Exit(1)
			}
			n.Text = text
		}
		if cmd.Flags().Changed("notes") {
			n.Notes = editNotes
		}
		if cmd.Flags().Changed("status") {
			n.Status = core.ParseStatus(editStatus)
		}
		if cmd.Flags().Changed("priority") {
			n.Priority = core.ParsePriority(strings.ToUpper(editPriority))
		}
		if cmd.Flags().Changed("tag") {
			n.Tags = core.NormalizeTags(editTags)
		}
		if cmd.Flags().Changed("due") {
			if editDue == "" {
				n.DueDate = nil
			} else if due, err := time.Parse(core.DateLayout, editDue); err != nil {
				fmt.Fprintln(os.Stderr, "Invalid due date format (use YYYY-MM-DD). Ignoring.")
			} else {
				n.DueDate = &due
			}
		}

		if !app.Store.Update(n) {
			fmt.Fprintln(os.Stderr, "Failed to update note (already gone?).")
			os.Exit(1)
		}
		saveStore(ctx, app)
		fmt.Println("Note updated!")
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editText, "text", "", "Replace the note text")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "Replace the long-form notes body")
	editCmd.Flags().StringVar(&editStatus, "status", "", "Set status: Todo, 'In Progress', Done, Archived")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "Set priority: A, B, C or empty to clear")
	editCmd.Flags().StringSliceVarP(&editTags, "tag", "t", nil, "Replace tags (repeatable)")
	editCmd.Flags().StringVar(&editDue, "due", "", "Set due date (YYYY-MM-DD), empty to clear")
}
