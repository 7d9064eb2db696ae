// Entry add command creates an entry with a single item.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/pkg/types"
)

var (
	entryTimestamp string
	entryItemType  string
	entryContent   string
	entryProject   string
	entryTags      []string
	entryJira      []string
	entryPeople    []string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new entry",
	Long: `Add creates a new entry holding one item.

Tags and people are resolved by name, creating them on first use.

Example:
  logbook entry add --content "Reviewed deployment plan"
  logbook entry add --type action --content "Ship v2" --project infra
  logbook entry add --content "Synced with Dana" --person dana --tag team`,
	RunE: runEntryAdd,
}

func init() {
	entryAddCmd.Flags().StringVar(&entryTimestamp, "timestamp", "", "entry timestamp, RFC 3339 (default: now)")
	entryAddCmd.Flags().StringVar(&entryItemType, "type", types.ItemTypeNote, "item type (note, action, decision, meeting)")
	entryAddCmd.Flags().StringVar(&entryContent, "content", "", "item content (required)")
	entryAddCmd.Flags().StringVar(&entryProject, "project", "", "project name")
	entryAddCmd.Flags().StringArrayVar(&entryTags, "tag", nil, "tag name (repeatable)")
	entryAddCmd.Flags().StringArrayVar(&entryJira, "jira", nil, "jira key (repeatable)")
	entryAddCmd.Flags().StringArrayVar(&entryPeople, "person", nil, "person name (repeatable)")
	_ = entryAddCmd.MarkFlagRequired("content")
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	service, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	timestamp := entryTimestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	req := types.CreateEntryRequest{
		Timestamp: timestamp,
		Items: []types.CreateItemRequest{{
			ItemType: entryItemType,
			Content:  entryContent,
			Project:  strPtr(entryProject),
			Tags:     entryTags,
			Jira:     entryJira,
			People:   entryPeople,
		}},
	}

	resp, err := service.CreateEntry(req)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	if flagJSON {
		return printJSON(resp)
	}
	fmt.Printf("Created entry: %s\n", resp.ID)
	return nil
}
