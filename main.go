// Command schemasync is the CLI entry point: it wires the migration
// manager (package migration) to a cobra command tree (package cmd).
package main

import "github.com/schemasync/schemasync/cmd"

func main() {
	cmd.Execute()
}
