package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/fatih/color"
	"github.com/schemasync/schemasync/migration"
	"github.com/spf13/cobra"
)

var rollbackID string

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Revert the most recently applied migration, or one chosen by --id",
	Run:   runRollback,
}

func init() {
	rollbackCmd.Flags().StringVar(&rollbackID, "id", "", "Roll back the migration with this id instead of the most recent one")
	rootCmd.AddCommand(rollbackCmd)
}

func runRollback(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	mgr, err := newManager(ctx)
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}
	defer mgr.Close(ctx)

	err = mgr.Rollback(ctx, rollbackID)
	switch {
	case errors.Is(err, migration.ErrNothingToRollback):
		color.New(color.FgYellow).Println("Nothing to roll back.")
		return
	case errors.Is(err, migration.ErrIntegrityViolation):
		log.Fatalf("schemasync: stored migration failed integrity check, refusing to roll back: %v", err)
	case err != nil:
		log.Fatalf("schemasync: %v", err)
	}

	if rollbackID != "" {
		color.New(color.FgGreen, color.Bold).Printf("Rolled back migration %s.\n", rollbackID)
		return
	}
	color.New(color.FgGreen, color.Bold).Println("Rolled back last migration.")
}
