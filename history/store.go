// Package history persists applied migrations in the database's own
// "_migrations" table and reloads them for status and rollback. It never
// talks to the network directly; all access goes through a client.Client.
package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/schemasync/schemasync/client"
)

// TableName is the history table. It is excluded from introspection by
// name (see introspect.ParseSchema).
const TableName = "_migrations"

// Record is one applied migration as stored in the database.
type Record struct {
	ID           string
	AppliedAt    time.Time
	Up           string
	Down         string
	Checksum     string
	DownChecksum string
}

// Store reads and writes migration history through a database client.
type Store struct {
	db client.Client
}

// New returns a Store backed by db.
func New(db client.Client) *Store {
	return &Store{db: db}
}

// EnsureTable probes for the history table and creates it if missing.
// Probing rather than unconditionally defining avoids clobbering an
// existing table's data on every initialize call.
func (s *Store) EnsureTable(ctx context.Context) error {
	if _, err := s.db.Select(ctx, TableName); err == nil {
		return nil
	}
	schema := fmt.Sprintf(
		"DEFINE TABLE %s SCHEMAFULL;\n"+
			"DEFINE FIELD appliedAt ON %s TYPE datetime;\n"+
			"DEFINE FIELD up ON %s TYPE string;\n"+
			"DEFINE FIELD down ON %s TYPE string;\n"+
			"DEFINE FIELD checksum ON %s TYPE string;\n"+
			"DEFINE FIELD downChecksum ON %s TYPE string;",
		TableName, TableName, TableName, TableName, TableName, TableName)
	if _, err := s.db.ExecuteQuery(ctx, schema); err != nil {
		return fmt.Errorf("history: create table: %w", err)
	}
	return nil
}

// Append inserts a new record and returns it with the database-assigned id.
func (s *Store) Append(ctx context.Context, appliedAt time.Time, up, down, checksum, downChecksum string) (Record, error) {
	row, err := s.db.Create(ctx, TableName, map[string]any{
		"appliedAt":    appliedAt,
		"up":           up,
		"down":         down,
		"checksum":     checksum,
		"downChecksum": downChecksum,
	})
	if err != nil {
		return Record{}, fmt.Errorf("history: append: %w", err)
	}
	return rowToRecord(row)
}

// List returns every history record, ascending by AppliedAt.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.Select(ctx, TableName)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		r, err := rowToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].AppliedAt.Before(records[j].AppliedAt) })
	return records, nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.db.Delete(ctx, id); err != nil {
		return fmt.Errorf("history: delete %s: %w", id, err)
	}
	return nil
}

func rowToRecord(row map[string]any) (Record, error) {
	id, _ := row["id"].(string)
	up, _ := row["up"].(string)
	down, _ := row["down"].(string)
	sum, _ := row["checksum"].(string)
	downSum, _ := row["downChecksum"].(string)

	appliedAt, err := asTime(row["appliedAt"])
	if err != nil {
		return Record{}, fmt.Errorf("history: decode record %s: %w", id, err)
	}

	return Record{
		ID:           id,
		AppliedAt:    appliedAt,
		Up:           up,
		Down:         down,
		Checksum:     sum,
		DownChecksum: downSum,
	}, nil
}

func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(time.RFC3339Nano, t)
	default:
		return time.Time{}, fmt.Errorf("unsupported appliedAt value %T", v)
	}
}
