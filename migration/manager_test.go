package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/schemasync/schemasync/client"
	"github.com/schemasync/schemasync/model"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr := New(client.NewMemoryClient())
	if err := mgr.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return mgr
}

func userSchema() *model.Schema {
	s := model.NewSchema()
	s.Tables["user"] = &model.Table{
		Name:       "user",
		Schemafull: true,
		Fields: []model.Field{
			{Name: "email", Type: "string", Assert: "$value != NONE"},
		},
	}
	return s
}

func TestMigrateNoChangesOnEmptyDesired(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	_, err := mgr.Migrate(ctx, model.NewSchema(), "", "")
	if !errors.Is(err, ErrNoChanges) {
		t.Fatalf("expected ErrNoChanges migrating an empty desired schema against an empty database, got %v", err)
	}
}

func TestMigrateAppliesAndRecordsHistory(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	record, err := mgr.Migrate(ctx, userSchema(), "", "")
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected a database-assigned id")
	}
	if record.Checksum == "" || record.DownChecksum == "" {
		t.Fatal("expected non-empty checksums")
	}

	status, err := mgr.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(status) != 1 {
		t.Fatalf("expected one history entry, got %d", len(status))
	}

	changed, err := mgr.HasChanges(ctx, userSchema())
	if err != nil {
		t.Fatalf("HasChanges: %v", err)
	}
	if changed {
		t.Fatal("after migrating to the desired schema, HasChanges should report false")
	}
}

func TestRollbackRevertsAndDeletesHistory(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	if _, err := mgr.Migrate(ctx, userSchema(), "", ""); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	if err := mgr.Rollback(ctx, ""); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	status, err := mgr.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(status) != 0 {
		t.Fatalf("expected no history entries after rollback, got %d", len(status))
	}

	changed, err := mgr.HasChanges(ctx, userSchema())
	if err != nil {
		t.Fatalf("HasChanges: %v", err)
	}
	if !changed {
		t.Fatal("after rolling back, the desired schema should again differ from the empty database")
	}
}

func TestRollbackNothingToRollback(t *testing.T) {
	mgr := newTestManager(t)
	err := mgr.Rollback(context.Background(), "")
	if !errors.Is(err, ErrNothingToRollback) {
		t.Fatalf("expected ErrNothingToRollback, got %v", err)
	}
}

func TestRollbackIntegrityViolation(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	record, err := mgr.Migrate(ctx, userSchema(), "", "")
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Tamper with the stored record directly through the history store,
	// bypassing Migrate, to simulate on-disk corruption.
	tampered := record
	tampered.Up = record.Up + "\n-- tampered"
	if err := mgr.history.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := mgr.history.Append(ctx, record.AppliedAt, tampered.Up, record.Down, record.Checksum, record.DownChecksum); err != nil {
		t.Fatalf("Append: %v", err)
	}

	err = mgr.Rollback(ctx, "")
	if !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation for a tampered record, got %v", err)
	}
}

func TestMigrateManualOverride(t *testing.T) {
	mgr := newTestManager(t)
	ctx := context.Background()

	up := "DEFINE TABLE widget SCHEMAFULL;"
	down := "REMOVE TABLE widget;"
	record, err := mgr.Migrate(ctx, model.NewSchema(), up, down)
	if err != nil {
		t.Fatalf("Migrate with manual override: %v", err)
	}
	if record.Down != down {
		t.Errorf("Down = %q, want %q", record.Down, down)
	}
}
