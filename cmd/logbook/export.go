// Export command group for the logbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the logbook to CSV or Markdown",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export all entries as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func() (string, error) {
			service, store, err := openService()
			if err != nil {
				return "", err
			}
			defer store.Close()
			return service.ExportCSV()
		})
	},
}

var exportMarkdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Export all entries as Markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(func() (string, error) {
			service, store, err := openService()
			if err != nil {
				return "", err
			}
			defer store.Close()
			return service.ExportMarkdown()
		})
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportMarkdownCmd)
}

func runExport(render func() (string, error)) error {
	body, err := render()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput == "" {
		fmt.Print(body)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Wrote %s\n", exportOutput)
	return nil
}
