// Tag commands for the logbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/pkg/types"
)

var (
	tagName        string
	tagDescription string
	tagColor       string
	tagCategory    string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		resp, err := service.CreateTag(types.CreateTagRequest{
			Name:        tagName,
			Description: strPtr(tagDescription),
			Color:       strPtr(tagColor),
			Category:    strPtr(tagCategory),
		})
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Created tag: %s\n", resp.ID)
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		tags, err := service.GetAllTags()
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}

		if flagJSON {
			return printJSON(tags)
		}
		for _, t := range tags {
			fmt.Printf("%s  %s  %s\n", t.ID, t.Name, t.Color)
		}
		return nil
	},
}

var tagUpdateCmd = &cobra.Command{
	Use:   "update <tag-id>",
	Short: "Update a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		req := types.UpdateTagRequest{ID: args[0]}
		if cmd.Flags().Changed("name") {
			req.Name = &tagName
		}
		if cmd.Flags().Changed("description") {
			req.Description = &tagDescription
		}
		if cmd.Flags().Changed("color") {
			req.Color = &tagColor
		}
		if cmd.Flags().Changed("category") {
			req.Category = &tagCategory
		}

		resp, err := service.UpdateTag(req)
		if err != nil {
			return fmt.Errorf("update tag: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Updated tag: %s\n", resp.ID)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <tag-id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.DeleteTag(args[0]); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		fmt.Printf("Deleted tag: %s\n", args[0])
		return nil
	},
}

func init() {
	tagAddCmd.Flags().StringVar(&tagName, "name", "", "tag name (required)")
	tagAddCmd.Flags().StringVar(&tagDescription, "description", "", "tag description")
	tagAddCmd.Flags().StringVar(&tagColor, "color", "", "display color (hex)")
	tagAddCmd.Flags().StringVar(&tagCategory, "category", "", "tag category")
	_ = tagAddCmd.MarkFlagRequired("name")

	tagUpdateCmd.Flags().StringVar(&tagName, "name", "", "new tag name")
	tagUpdateCmd.Flags().StringVar(&tagDescription, "description", "", "new description")
	tagUpdateCmd.Flags().StringVar(&tagColor, "color", "", "new display color (hex)")
	tagUpdateCmd.Flags().StringVar(&tagCategory, "category", "", "new category")

	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagUpdateCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
