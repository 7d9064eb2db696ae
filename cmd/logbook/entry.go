// Entry command group for the logbook CLI.
package main

import "github.com/spf13/cobra"

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage logbook entries",
}

func init() {
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryDeleteCmd)
}
