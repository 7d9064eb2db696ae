// Shared helpers for logbook CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/scobrodev/logbook/internal/command"
	"github.com/scobrodev/logbook/internal/sqlite"
	"github.com/scobrodev/logbook/pkg/types"
)

// openService resolves the data directory, opens the SQLite store, and
// wraps it in a command service. The caller must defer store.Close().
func openService() (*command.Service, *sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{DataDir: dataDir})
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return command.NewService(store), store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// strPtr returns a pointer to s, or nil when s is empty. CLI flags
// leave optional request fields unset when not provided.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
