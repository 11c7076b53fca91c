package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List applied migrations, oldest first",
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	mgr, err := newManager(ctx)
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}
	defer mgr.Close(ctx)

	entries, err := mgr.Status(ctx)
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}

	if len(entries) == 0 {
		color.New(color.FgYellow).Println("No migrations applied.")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  %s  checksum=%s\n",
			e.Record.AppliedAt.Format("2006-01-02T15:04:05Z07:00"),
			e.Record.ID,
			e.Record.Checksum)
	}
}
