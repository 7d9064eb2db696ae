// Item update command applies a partial update to one entry item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/pkg/types"
)

var (
	itemContent string
	itemProject string
	itemTags    []string
	itemJira    []string
	itemPeople  []string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Update an entry item",
	Long: `Update modifies only the fields whose flags were provided.

Passing --tag, --jira, or --person replaces the item's full set for
that relation; providing the flag with an empty value clears it.

Example:
  logbook item update 3f2a... --content "Revised plan"
  logbook item update 3f2a... --tag infra --tag oncall
  logbook item update 3f2a... --tag ""`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&itemContent, "content", "", "new content")
	itemUpdateCmd.Flags().StringVar(&itemProject, "project", "", "new project name")
	itemUpdateCmd.Flags().StringArrayVar(&itemTags, "tag", nil, "replacement tag set (repeatable)")
	itemUpdateCmd.Flags().StringArrayVar(&itemJira, "jira", nil, "replacement jira set (repeatable)")
	itemUpdateCmd.Flags().StringArrayVar(&itemPeople, "person", nil, "replacement people set (repeatable)")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	service, store, err := openService()
	if err != nil {
		return err
	}
	defer store.Close()

	var req types.UpdateEntryItemRequest
	if cmd.Flags().Changed("content") {
		req.Content = &itemContent
	}
	if cmd.Flags().Changed("project") {
		req.Project = &itemProject
	}
	if cmd.Flags().Changed("tag") {
		req.Tags = replacementSet(itemTags)
	}
	if cmd.Flags().Changed("jira") {
		req.Jira = replacementSet(itemJira)
	}
	if cmd.Flags().Changed("person") {
		req.People = replacementSet(itemPeople)
	}

	resp, err := service.UpdateEntryItem(args[0], req)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if flagJSON {
		return printJSON(resp)
	}
	fmt.Printf("Updated item: %s\n", resp.ID)
	return nil
}

// replacementSet turns repeated flag values into a replacement set,
// treating a single empty value as an explicit clear.
func replacementSet(values []string) *[]string {
	set := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			set = append(set, v)
		}
	}
	return &set
}
