// Serve command runs the JSON HTTP API.
package main

import (
	"github.com/spf13/cobra"

	"github.com/scobrodev/logbook/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the logbook HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()

		return api.New(service, serveAddr).Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8484", "listen address")
}
