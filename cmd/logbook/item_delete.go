// Item delete command removes a single entry item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete an entry item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.DeleteEntryItem(args[0]); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		fmt.Printf("Deleted item: %s\n", args[0])
		return nil
	},
}
