package diff

import (
	"strings"
	"testing"

	"github.com/schemasync/schemasync/model"
)

func contains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("expected script to contain %q, got:\n%s", needle, haystack)
	}
}

func TestDiffEmptyOnIdenticalSchemas(t *testing.T) {
	s := model.NewSchema()
	s.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{{Name: "email", Type: "string"}}}

	result := Diff(s, s)
	if len(result.Changes) != 0 {
		t.Fatalf("diffing a schema against itself produced changes: %v", result.Changes)
	}
	if strings.TrimSpace(result.Up) != "" {
		t.Fatalf("diffing a schema against itself produced a non-empty up script: %q", result.Up)
	}
	if HasChanges(s, s) {
		t.Fatal("HasChanges disagreed with an empty Diff")
	}
}

func TestHasChangesAgreesWithDiff(t *testing.T) {
	current := model.NewSchema()
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true}

	if !HasChanges(desired, current) {
		t.Fatal("HasChanges should report true when a table is created")
	}
	result := Diff(desired, current)
	if len(result.Changes) == 0 {
		t.Fatal("HasChanges(true) disagreed with Diff(...).Changes being empty")
	}
}

// Scenario 1: initial create.
func TestScenarioInitialCreate(t *testing.T) {
	current := model.NewSchema()
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{
		Name:       "user",
		Schemafull: true,
		Fields: []model.Field{
			{Name: "email", Type: "string", Assert: "$value != NONE"},
			{Name: "createdAt", Type: "datetime", Default: "time::now()"},
		},
		Indexes: []model.Index{
			{Name: "email", Columns: []string{"email"}, Unique: true},
		},
	}

	result := Diff(desired, current)

	contains(t, result.Up, "DEFINE TABLE user SCHEMAFULL;")
	contains(t, result.Up, "DEFINE FIELD email ON TABLE user TYPE string ASSERT $value != NONE;")
	contains(t, result.Up, "DEFINE FIELD createdAt ON TABLE user TYPE datetime DEFAULT time::now();")
	contains(t, result.Up, "DEFINE INDEX email ON TABLE user FIELDS email UNIQUE;")
	contains(t, result.Down, "REMOVE TABLE user;")
}

// Scenario 2: add field.
func TestScenarioAddField(t *testing.T) {
	current := model.NewSchema()
	current.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{{Name: "email", Type: "string"}}}
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "email", Type: "string"},
		{Name: "avatar", Type: "string"},
	}}

	result := Diff(desired, current)
	if strings.TrimSpace(result.Up) != "DEFINE FIELD avatar ON TABLE user TYPE string;" {
		t.Errorf("unexpected forward script: %q", result.Up)
	}
	if strings.TrimSpace(result.Down) != "REMOVE FIELD avatar ON TABLE user;" {
		t.Errorf("unexpected rollback script: %q", result.Down)
	}
}

// Scenario 3: rename field via previousName hint.
func TestScenarioRenameField(t *testing.T) {
	current := model.NewSchema()
	current.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{{Name: "email", Type: "string"}}}
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "emailAddress", Type: "string", PreviousName: []string{"email"}},
	}}

	result := Diff(desired, current)
	if strings.TrimSpace(result.Up) != "ALTER FIELD email RENAME TO emailAddress ON TABLE user;" {
		t.Errorf("unexpected forward script: %q", result.Up)
	}
	if strings.TrimSpace(result.Down) != "ALTER FIELD emailAddress RENAME TO email ON TABLE user;" {
		t.Errorf("unexpected rollback script: %q", result.Down)
	}
	if strings.Contains(result.Up, "REMOVE") || strings.Contains(result.Up, "DEFINE FIELD") {
		t.Errorf("rename should not emit a drop/create, got: %q", result.Up)
	}
}

// Scenario 4: narrow field modification emits one granular ALTER.
func TestScenarioNarrowFieldModification(t *testing.T) {
	current := model.NewSchema()
	current.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "status", Type: "string", Default: "'draft'"},
	}}
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "status", Type: "string", Default: "'active'"},
	}}

	result := Diff(desired, current)
	if strings.TrimSpace(result.Up) != "ALTER FIELD status DEFAULT 'active' ON TABLE user;" {
		t.Errorf("unexpected forward script: %q", result.Up)
	}
	if strings.TrimSpace(result.Down) != "ALTER FIELD status DEFAULT 'draft' ON TABLE user;" {
		t.Errorf("unexpected rollback script: %q", result.Down)
	}
}

// Scenario 5: wide field modification (4+ properties) emits one OVERWRITE.
func TestScenarioWideFieldModification(t *testing.T) {
	current := model.NewSchema()
	current.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "status", Type: "string", Default: "'draft'", Assert: "$value != NONE", Readonly: false, Comment: "old"},
	}}
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "status", Type: "int", Default: "0", Assert: "$value >= 0", Readonly: true, Comment: "new"},
	}}

	result := Diff(desired, current)
	if strings.Count(result.Up, "DEFINE FIELD OVERWRITE") != 1 {
		t.Errorf("expected exactly one OVERWRITE in forward script, got: %q", result.Up)
	}
	if strings.Contains(result.Up, "ALTER FIELD") {
		t.Errorf("wide modification should not use granular ALTER: %q", result.Up)
	}
	if strings.Count(result.Down, "DEFINE FIELD OVERWRITE") != 1 {
		t.Errorf("expected exactly one OVERWRITE in rollback script, got: %q", result.Down)
	}
}

// Scenario 6: relation endpoint change forces a drop+full-recreate, never an ALTER.
func TestScenarioRelationEndpointChange(t *testing.T) {
	current := model.NewSchema()
	current.Tables["follows"] = &model.Table{
		Name: "follows", Schemafull: true,
		Relation: &model.RelationInfo{From: "user", To: "user"},
	}
	desired := model.NewSchema()
	desired.Tables["follows"] = &model.Table{
		Name: "follows", Schemafull: true,
		Relation: &model.RelationInfo{From: "user", To: "profile"},
	}

	result := Diff(desired, current)
	if !strings.HasPrefix(strings.TrimSpace(result.Up), "REMOVE TABLE follows;") {
		t.Errorf("forward script should start with REMOVE TABLE follows;, got: %q", result.Up)
	}
	contains(t, result.Up, "DEFINE TABLE follows TYPE RELATION IN user OUT profile SCHEMAFULL;")
	if strings.Contains(result.Up, "ALTER TABLE") {
		t.Errorf("relation endpoint change must never be an ALTER: %q", result.Up)
	}

	contains(t, result.Down, "REMOVE TABLE follows;")
	contains(t, result.Down, "DEFINE TABLE follows TYPE RELATION IN user OUT user SCHEMAFULL;")
}

func TestRenameNeverLosesData(t *testing.T) {
	current := model.NewSchema()
	current.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{{Name: "email", Type: "string"}}}
	desired := model.NewSchema()
	desired.Tables["user"] = &model.Table{Name: "user", Schemafull: true, Fields: []model.Field{
		{Name: "emailAddress", Type: "string", PreviousName: []string{"email"}},
	}}

	result := Diff(desired, current)
	for _, c := range result.Changes {
		if c.Operation == model.OpRemove && c.Entity == "email" {
			t.Fatalf("rename hint target 'email' must never be dropped, changes: %+v", result.Changes)
		}
	}
}

func TestReservedRelationFieldsNeverDiffed(t *testing.T) {
	current := model.NewSchema()
	current.Tables["follows"] = &model.Table{
		Name: "follows", Schemafull: true,
		Relation: &model.RelationInfo{From: "user", To: "user"},
		Fields: []model.Field{
			{Name: "in", Type: "record<user>"},
			{Name: "out", Type: "record<user>"},
		},
	}
	desired := model.NewSchema()
	desired.Tables["follows"] = &model.Table{
		Name: "follows", Schemafull: true,
		Relation: &model.RelationInfo{From: "user", To: "user"},
	}

	result := Diff(desired, current)
	if strings.TrimSpace(result.Up) != "" {
		t.Errorf("in/out fields should never be diffed, got forward script: %q", result.Up)
	}
}
