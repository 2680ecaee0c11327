package main

import (
	"fmt"

	"github.com/spf13/cobra"

	managerchan "github.com/DevlopRishi/manager-chan"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of manager-chan",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("manager-chan version %s\n", managerchan.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
