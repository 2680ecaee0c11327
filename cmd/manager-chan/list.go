package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

var (
	listSort     string
	listStatus   string
	listPriority string
	listTag      string
	listArchived bool
	listSearch   string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, filtered, searched and sorted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		if listJSON {
			// Keep stdout machine-readable.
			_, _ = app.Store.Load(ctx)
		} else {
			loadStore(ctx, app)
		}

		filters := core.Filters{
			Tag:             listTag,
			IncludeArchived: listArchived,
		}
		if listStatus != "" {
			st := core.ParseStatus(listStatus)
			filters.Status = &st
			if st == core.StatusArchived {
				filters.IncludeArchived = true
			}
		}
		if listPriority != "" {
			p := core.ParsePriority(strings.ToUpper(listPriority))
			filters.Priority = &p
		}

		notes := app.Store.View(listSort, filters, listSearch)

		if listJSON {
			records := make([]core.Record, len(notes))
			for i, n := range notes {
				records[i] = n.Record()
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(records); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println("List is empty! Or I forgot everything...")
			return
		}

		for _, n := range notes {
			text, typo := app.Store.Render(n.Text)
			marker := " "
			if typo {
				marker = "?"
			}
			fmt.Printf("%-8s [%s] %-11s %s%s%s\n",
				shortID(n.ID), priorityCell(n.Priority), n.Status, text, marker, tagSuffix(n.Tags))
		}
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func priorityCell(p core.Priority) string {
	if p == core.PriorityUnset {
		return "-"
	}
	return p.String()
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "  #" + strings.Join(tags, " #")
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort key: priority, due_date, created_at, modified_at, status, text")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag (glob patterns allowed)")
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Include archived notes")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Case-insensitive substring search")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
