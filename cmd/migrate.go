package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/schemasync/schemasync/migration"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the migration from the live database's current schema to the desired schema",
	Run:   runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Print the scripts without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	desired, err := loadDesiredSchema()
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}

	mgr, err := newManager(ctx)
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}
	defer mgr.Close(ctx)

	if migrateDryRun {
		result, err := mgr.GenerateDiff(ctx, desired)
		if err != nil {
			log.Fatalf("schemasync: %v", err)
		}
		color.New(color.FgCyan, color.Bold).Println("-- forward (dry run) --")
		fmt.Println(result.Up)
		return
	}

	record, err := mgr.Migrate(ctx, desired, "", "")
	if errors.Is(err, migration.ErrNoChanges) {
		color.New(color.FgGreen).Println("No changes.")
		return
	}
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}

	color.New(color.FgGreen, color.Bold).Printf("Applied migration %s\n", record.ID)
}
