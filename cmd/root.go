// Package cmd wires the migration manager to a command-line interface
// built on cobra, the way the upstream CLI structures its command tree.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schemasync/schemasync/cliconfig"
	"github.com/schemasync/schemasync/client"
	"github.com/schemasync/schemasync/loader"
	"github.com/schemasync/schemasync/migration"
	"github.com/schemasync/schemasync/model"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schemasync",
	Short: "schemasync compares a desired schema against a live database and migrates it.",
	Long: `schemasync is a declarative schema migration engine. It compares a
desired schema authored as JSON against the schema discovered by live
introspection, and applies a minimal, bidirectional migration script.`,
}

var (
	flagSchemaPath  string
	flagDatabaseURL string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSchemaPath, "schema", "", "Path to the desired schema JSON document")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "Target database connection string")
}

// Execute runs the root command, exiting the process with status 1 on
// any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDesiredSchema resolves the schema path from flag/config/default and
// loads it through the JSON loader.
func loadDesiredSchema() (*model.Schema, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("schemasync: load config: %w", err)
	}
	path := cliconfig.SchemaPath(flagSchemaPath, cfg, "schema.json")

	l := loader.NewJSONFileLoader()
	schema, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", migration.ErrSchemaLoad, err)
	}
	return schema, nil
}

// newManager builds a migration.Manager against an in-memory client.
// schemasync ships no live network driver; client.MemoryClient is the
// deterministic fake used for both tests and this offline CLI mode. The
// resolved connection string is carried in the manager's diagnostics even
// though MemoryClient itself ignores it, so a future network client can be
// swapped in behind newManager without touching call sites.
func newManager(ctx context.Context) (*migration.Manager, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("schemasync: load config: %w", err)
	}
	url := cliconfig.DatabaseURL(flagDatabaseURL, cfg, "memory://local")

	mc := client.NewMemoryClient()
	mgr := migration.New(mc)
	mgr.ConnectionLabel = url
	if err := mgr.Initialize(ctx); err != nil {
		return nil, err
	}
	return mgr, nil
}
