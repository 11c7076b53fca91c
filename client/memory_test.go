package client

import (
	"context"
	"strings"
	"testing"
)

func connected(t *testing.T) *MemoryClient {
	t.Helper()
	c := NewMemoryClient()
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return c
}

func TestExecuteQueryRequiresConnection(t *testing.T) {
	c := NewMemoryClient()
	_, err := c.ExecuteQuery(context.Background(), "DEFINE TABLE widget SCHEMAFULL;")
	if err == nil {
		t.Fatal("expected an error when executing against a disconnected client")
	}
}

func TestExecuteQueryDefineAndIntrospectTable(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	if _, err := c.ExecuteQuery(ctx, "DEFINE TABLE widget SCHEMAFULL;"); err != nil {
		t.Fatalf("ExecuteQuery: %v", err)
	}
	info, err := c.InfoForDB(ctx)
	if err != nil {
		t.Fatalf("InfoForDB: %v", err)
	}
	if _, ok := info.Tables["widget"]; !ok {
		t.Fatalf("expected widget table in InfoForDB, got %+v", info.Tables)
	}
}

// A leading timestamp comment line, as prepended by the migration manager's
// withTimestampComment before every execution, must not prevent the first
// real statement in the batch from being classified.
func TestExecuteQueryToleratesLeadingTimestampComment(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	batch := "-- 2024-01-01T00:00:00Z\nDEFINE TABLE widget SCHEMAFULL;\nDEFINE FIELD name ON TABLE widget TYPE string;"
	if _, err := c.ExecuteQuery(ctx, batch); err != nil {
		t.Fatalf("ExecuteQuery with leading comment: %v", err)
	}
	info, err := c.InfoForDB(ctx)
	if err != nil {
		t.Fatalf("InfoForDB: %v", err)
	}
	if _, ok := info.Tables["widget"]; !ok {
		t.Fatal("expected widget table to be defined despite leading comment")
	}
	tbl, err := c.InfoForTable(ctx, "widget")
	if err != nil {
		t.Fatalf("InfoForTable: %v", err)
	}
	if _, ok := tbl.Fields["name"]; !ok {
		t.Fatal("expected name field to be defined despite leading comment on the batch")
	}
}

func TestExecuteQueryFailureLeavesStateUntouched(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	if _, err := c.ExecuteQuery(ctx, "DEFINE TABLE widget SCHEMAFULL;"); err != nil {
		t.Fatalf("ExecuteQuery: %v", err)
	}
	_, err := c.ExecuteQuery(ctx, "DEFINE TABLE gadget SCHEMAFULL;\nnonsense statement")
	if err == nil {
		t.Fatal("expected an error for an unrecognized statement")
	}
	info, err := c.InfoForDB(ctx)
	if err != nil {
		t.Fatalf("InfoForDB: %v", err)
	}
	if _, ok := info.Tables["gadget"]; ok {
		t.Fatal("a failed batch must not partially commit")
	}
	if _, ok := info.Tables["widget"]; !ok {
		t.Fatal("a failed batch must not roll back unrelated prior state")
	}
}

func TestExecuteQueryAlterFieldRenamePreservesStatement(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	batch := strings.Join([]string{
		"DEFINE TABLE widget SCHEMAFULL;",
		"DEFINE FIELD label ON TABLE widget TYPE string;",
		"ALTER FIELD label RENAME TO title ON TABLE widget;",
	}, "\n")
	if _, err := c.ExecuteQuery(ctx, batch); err != nil {
		t.Fatalf("ExecuteQuery: %v", err)
	}
	tbl, err := c.InfoForTable(ctx, "widget")
	if err != nil {
		t.Fatalf("InfoForTable: %v", err)
	}
	if _, ok := tbl.Fields["label"]; ok {
		t.Fatal("old field name should no longer exist after rename")
	}
	if _, ok := tbl.Fields["title"]; !ok {
		t.Fatal("renamed field should exist under its new name")
	}
}

func TestCreateAssignsIDAndSelectReturnsIt(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	rec, err := c.Create(ctx, "widget", map[string]any{"name": "sprocket"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, _ := rec["id"].(string)
	if id == "" || !strings.HasPrefix(id, "widget:") {
		t.Fatalf("expected an assigned widget: id, got %q", id)
	}

	rows, err := c.Select(ctx, "widget")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestDeleteRemovesOnlyMatchingRecord(t *testing.T) {
	c := connected(t)
	ctx := context.Background()
	first, _ := c.Create(ctx, "widget", map[string]any{"name": "a"})
	_, _ = c.Create(ctx, "widget", map[string]any{"name": "b"})

	if err := c.Delete(ctx, first["id"].(string)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err := c.Select(ctx, "widget")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 remaining row, got %d", len(rows))
	}
	if rows[0]["name"] != "b" {
		t.Fatalf("expected the surviving row to be 'b', got %v", rows[0]["name"])
	}
}
