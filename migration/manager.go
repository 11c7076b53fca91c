// Package migration orchestrates the full lifecycle: connect, introspect,
// diff, apply, record, and roll back. It is the one package that owns a
// client.Client for the duration of a run.
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/schemasync/schemasync/checksum"
	"github.com/schemasync/schemasync/client"
	"github.com/schemasync/schemasync/diff"
	"github.com/schemasync/schemasync/history"
	"github.com/schemasync/schemasync/introspect"
	"github.com/schemasync/schemasync/model"
)

// State is the manager's lifecycle state.
type State string

const (
	StateNew         State = "new"
	StateInitialized State = "initialized"
	StateApplying    State = "applying"
	StateRollingBack State = "rolling-back"
	StateFailed      State = "failed"
)

// AppliedMigration is one entry of status().
type AppliedMigration struct {
	Applied bool
	Record  history.Record
}

// Manager drives the migration lifecycle against one database client. It
// never caches introspection results between calls: every HasChanges and
// GenerateDiff call, and every Migrate call without a manual up/down,
// reintrospects from scratch. Rollback reads only the history table.
type Manager struct {
	db      client.Client
	history *history.Store
	state   State

	// ConnectionLabel is a diagnostic-only description of the target
	// database (e.g. a resolved connection URL). The manager never parses
	// or acts on it; it exists so callers building their own client.Client
	// have somewhere to surface what they connected to.
	ConnectionLabel string

	// now is overridable in tests; it stamps AppliedAt and the timestamp
	// comment prefixed to up.
	now func() time.Time
}

// New returns a Manager wrapping db. The manager owns db for the duration
// of its lifecycle; callers should not use db directly once initialized.
func New(db client.Client) *Manager {
	return &Manager{db: db, history: history.New(db), state: StateNew, now: time.Now}
}

// State reports the manager's current lifecycle state.
func (m *Manager) State() State { return m.state }

// Initialize connects the client and ensures the history table exists.
// Both steps are idempotent.
func (m *Manager) Initialize(ctx context.Context) error {
	if err := m.db.Connect(ctx); err != nil {
		m.state = StateFailed
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := m.history.EnsureTable(ctx); err != nil {
		m.state = StateFailed
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	m.state = StateInitialized
	return nil
}

// Close disconnects the client. Idempotent.
func (m *Manager) Close(ctx context.Context) error {
	if err := m.db.Disconnect(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// introspectCurrent reads INFO FOR DB, then INFO FOR TABLE for each table,
// and assembles the full introspected model.
func (m *Manager) introspectCurrent(ctx context.Context) (*model.Schema, error) {
	dbInfo, err := m.db.InfoForDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: INFO FOR DB: %v", ErrIntrospection, err)
	}
	tables := make(map[string]model.InfoForTable, len(dbInfo.Tables))
	for name := range dbInfo.Tables {
		if name == history.TableName {
			continue
		}
		info, err := m.db.InfoForTable(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("%w: INFO FOR TABLE %s: %v", ErrIntrospection, name, err)
		}
		tables[name] = info
	}
	schema, err := introspect.ParseSchema(dbInfo, tables)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return schema, nil
}

// HasChanges reports whether desired differs from the live introspected
// schema. It must agree with len(GenerateDiff(...).Changes) > 0.
func (m *Manager) HasChanges(ctx context.Context, desired *model.Schema) (bool, error) {
	current, err := m.introspectCurrent(ctx)
	if err != nil {
		return false, err
	}
	return diff.HasChanges(desired, current), nil
}

// GenerateDiff introspects the live schema and returns the forward/rollback
// scripts against desired. It is read-only with respect to the database.
func (m *Manager) GenerateDiff(ctx context.Context, desired *model.Schema) (*diff.Result, error) {
	current, err := m.introspectCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return diff.Diff(desired, current), nil
}

// Migrate applies a migration and records it in history. If either up or
// down is non-empty, both are used verbatim as given (manual override);
// only when both are empty does the manager introspect, diff, and fail
// with ErrNoChanges if the schemas already agree.
func (m *Manager) Migrate(ctx context.Context, desired *model.Schema, up, down string) (history.Record, error) {
	m.state = StateApplying
	defer func() {
		if m.state == StateApplying {
			m.state = StateInitialized
		}
	}()

	if up == "" && down == "" {
		changed, err := m.HasChanges(ctx, desired)
		if err != nil {
			m.state = StateFailed
			return history.Record{}, err
		}
		if !changed {
			m.state = StateInitialized
			return history.Record{}, ErrNoChanges
		}
		result, err := m.GenerateDiff(ctx, desired)
		if err != nil {
			m.state = StateFailed
			return history.Record{}, err
		}
		up, down = result.Up, result.Down
	}

	up = withTimestampComment(up, m.now())

	if _, err := m.db.ExecuteQuery(ctx, up); err != nil {
		m.state = StateFailed
		return history.Record{}, fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	record, err := m.history.Append(ctx, m.now(), up, down, checksum.Compute(up), checksum.Compute(down))
	if err != nil {
		// Database already applied up; the write failure is a recoverable
		// inconsistency the caller can address by re-introspecting.
		m.state = StateFailed
		return history.Record{}, err
	}

	m.state = StateInitialized
	return record, nil
}

// Rollback reverts a previously applied migration. If id is empty, the
// most recently applied migration is used. Integrity of both the stored
// up and down scripts is verified before executing down.
func (m *Manager) Rollback(ctx context.Context, id string) error {
	m.state = StateRollingBack
	defer func() {
		if m.state == StateRollingBack {
			m.state = StateInitialized
		}
	}()

	records, err := m.history.List(ctx)
	if err != nil {
		m.state = StateFailed
		return err
	}
	if len(records) == 0 {
		m.state = StateInitialized
		return ErrNothingToRollback
	}

	record := records[len(records)-1]
	if id != "" {
		found := false
		for _, r := range records {
			if r.ID == id {
				record, found = r, true
				break
			}
		}
		if !found {
			m.state = StateInitialized
			return fmt.Errorf("%w: id %s not found", ErrNothingToRollback, id)
		}
	}

	if !checksum.Verify(record.Up, record.Checksum) || !checksum.Verify(record.Down, record.DownChecksum) {
		m.state = StateFailed
		return fmt.Errorf("%w: record %s", ErrIntegrityViolation, record.ID)
	}
	if record.Down == "" {
		m.state = StateInitialized
		return fmt.Errorf("%w: record %s", ErrEmptyRollback, record.ID)
	}

	if _, err := m.db.ExecuteQuery(ctx, record.Down); err != nil {
		m.state = StateFailed
		return fmt.Errorf("%w: %v", ErrRollbackFailed, err)
	}

	if err := m.history.Delete(ctx, record.ID); err != nil {
		m.state = StateFailed
		return err
	}

	m.state = StateInitialized
	return nil
}

// Status lists every applied migration, ascending by AppliedAt.
func (m *Manager) Status(ctx context.Context) ([]AppliedMigration, error) {
	records, err := m.history.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AppliedMigration, 0, len(records))
	for _, r := range records {
		out = append(out, AppliedMigration{Applied: true, Record: r})
	}
	return out, nil
}

func withTimestampComment(up string, at time.Time) string {
	comment := fmt.Sprintf("-- %s", at.UTC().Format(time.RFC3339))
	if up == "" {
		return comment
	}
	return comment + "\n" + up
}
