package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/markdown"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export every note as Markdown with YAML frontmatter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		notes := app.Store.All()
		if err := markdown.ExportDir(args[0], notes); err != nil {
			fatal("Error exporting notes", err)
		}
		fmt.Printf("Exported %d notes to %s\n", len(notes), args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import Markdown notes, merging by ID",
	Long: `Import reads every .md file in the directory. Notes whose ID already
exists in the collection are updated in place; the rest are added.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp()
		loadStore(ctx, app)

		imported, err := markdown.ImportDir(args[0], nil)
		if err != nil {
			fatal("Error importing notes", err)
		}

		added, updated := 0, 0
		for _, n := range imported {
			if app.Store.Update(n) {
				updated++
			} else {
				app.Store.Add(n)
				added++
			}
		}
		saveStore(ctx, app)
		fmt.Printf("Imported %d notes (%d new, %d updated)\n", len(imported), added, updated)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
