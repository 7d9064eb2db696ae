// Project commands for the logbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/pkg/types"
)

var (
	projectName        string
	projectDescription string
	projectColor       string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		resp, err := service.CreateProject(types.CreateProjectRequest{
			Name:        projectName,
			Description: strPtr(projectDescription),
			Color:       strPtr(projectColor),
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Created project: %s\n", resp.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		projects, err := service.GetAllProjects()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}

		if flagJSON {
			return printJSON(projects)
		}
		for _, p := range projects {
			fmt.Printf("%s  %s  %s\n", p.ID, p.Name, p.Color)
		}
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <project-id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		req := types.UpdateProjectRequest{ID: args[0]}
		if cmd.Flags().Changed("name") {
			req.Name = &projectName
		}
		if cmd.Flags().Changed("description") {
			req.Description = &projectDescription
		}
		if cmd.Flags().Changed("color") {
			req.Color = &projectColor
		}

		resp, err := service.UpdateProject(req)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		if flagJSON {
			return printJSON(resp)
		}
		fmt.Printf("Updated project: %s\n", resp.ID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.DeleteProject(args[0]); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		fmt.Printf("Deleted project: %s\n", args[0])
		return nil
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectName, "name", "", "project name (required)")
	projectAddCmd.Flags().StringVar(&projectDescription, "description", "", "project description")
	projectAddCmd.Flags().StringVar(&projectColor, "color", "", "display color (hex)")
	_ = projectAddCmd.MarkFlagRequired("name")

	projectUpdateCmd.Flags().StringVar(&projectName, "name", "", "new project name")
	projectUpdateCmd.Flags().StringVar(&projectDescription, "description", "", "new description")
	projectUpdateCmd.Flags().StringVar(&projectColor, "color", "", "new display color (hex)")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
