package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show the forward and rollback scripts between the desired schema and the live database",
	Run:   runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) {
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

	result, err := mgr.GenerateDiff(ctx, desired)
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}

	if len(result.Changes) == 0 {
		color.New(color.FgGreen).Println("No changes.")
		return
	}

	color.New(color.FgCyan, color.Bold).Println("-- forward --")
	fmt.Println(result.Up)
	color.New(color.FgCyan, color.Bold).Println("-- rollback --")
	fmt.Println(result.Down)
}
