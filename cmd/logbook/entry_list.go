// Entry list command prints all entries, newest first.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := service.GetAllEntries()
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s\n", entry.ID, entry.Timestamp)
			for _, item := range entry.Items {
				line := fmt.Sprintf("  [%s] %s", item.ItemType, item.Content)
				if item.Project != nil {
					line += fmt.Sprintf(" (project: %s)", *item.Project)
				}
				if len(item.Tags) > 0 {
					line += fmt.Sprintf(" #%s", strings.Join(item.Tags, " #"))
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}
