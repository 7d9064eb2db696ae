// Entry delete command removes an entry and its items.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an entry with all its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.DeleteEntry(args[0]); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}

		fmt.Printf("Deleted entry: %s\n", args[0])
		return nil
	},
}
