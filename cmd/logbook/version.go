// Version command for the logbook CLI.
package main

import (
	"fmt"

	"github.com/scobrodev/logbook/pkg/logbook"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the logbook version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("logbook", logbook.Version)
	},
}
