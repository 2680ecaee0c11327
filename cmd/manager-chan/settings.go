package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DevlopRishi/manager-chan/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change application settings",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every setting and its effective value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		all := app.Settings.All()
		for _, key := range settings.Keys() {
			fmt.Printf("%-28s %v\n", key, all[key])
		}
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		v := app.Settings.Get(args[0])
		if v == nil {
			fmt.Fprintf(os.Stderr, "Unknown setting %q\n", args[0])
			os.Exit(1)
		}
		fmt.Println(v)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app := openApp()
		if err := app.Settings.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Settings error: %v. Not saved.\n", err)
			os.Exit(1)
		}
		// Persistence happened through the on-change callback.
		fmt.Println("Settings saved!")
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
