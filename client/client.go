// Package client defines the small interface the migration manager
// consumes from the database driver (§6): connect/disconnect, executing a
// batch of definition-language statements, and the convenience
// select/create/delete operations the history store needs. It is a
// consumed boundary — this package never itself dials a network socket;
// memory.go supplies a deterministic in-memory fake for tests and for the
// CLI's offline demo mode.
package client

import (
	"context"

	"github.com/schemasync/schemasync/model"
)

// QueryResult is one statement's result within an ExecuteQuery batch.
type QueryResult struct {
	Status string
	Time   string
	Result []map[string]any
}

// Client is the database client the migration manager depends on.
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	// ExecuteQuery executes one or more ";"-separated definition-language
	// statements as a single batch.
	ExecuteQuery(ctx context.Context, statements string) ([]QueryResult, error)

	Select(ctx context.Context, table string) ([]map[string]any, error)
	Create(ctx context.Context, table string, record map[string]any) (map[string]any, error)
	Delete(ctx context.Context, recordID string) error

	InfoForDB(ctx context.Context) (model.InfoForDB, error)
	InfoForTable(ctx context.Context, table string) (model.InfoForTable, error)
}
