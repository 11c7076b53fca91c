package cmd

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the desired schema document and report whether it parses",
	Run:   runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	desired, err := loadDesiredSchema()
	if err != nil {
		log.Fatalf("schemasync: %v", err)
	}

	tables, relations := 0, 0
	for _, t := range desired.Tables {
		if t.IsRelation() {
			relations++
		} else {
			tables++
		}
	}

	color.New(color.FgGreen).Println("Schema is valid.")
	fmt.Printf("tables=%d relations=%d functions=%d analyzers=%d scopes=%d params=%d sequences=%d users=%d\n",
		tables, relations, len(desired.Functions), len(desired.Analyzers),
		len(desired.Scopes), len(desired.Params), len(desired.Sequences), len(desired.Users))
}
