package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSchema(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	l := NewJSONFileLoader()
	if _, err := l.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeSchema(t, "{not json")
	l := NewJSONFileLoader()
	if _, err := l.Load(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestLoadFullSchema(t *testing.T) {
	contents := `{
		"tables": [
			{
				"name": "user",
				"schemafull": true,
				"fields": [
					{"name": "email", "type": "string", "assert": "$value != NONE"}
				],
				"indexes": [
					{"name": "email", "columns": ["email"], "unique": true}
				]
			},
			{
				"name": "follows",
				"schemafull": true,
				"relation": {"from": "user", "to": "user", "enforced": true}
			}
		],
		"functions": [
			{"name": "greet", "parameters": [{"name": "name", "type": "string"}], "returnType": "string", "body": "RETURN name;"}
		],
		"params": [
			{"name": "maxItems", "value": "100"}
		],
		"users": [
			{"name": "admin", "level": "DATABASE", "roles": ["OWNER"]}
		]
	}`
	path := writeSchema(t, contents)
	l := NewJSONFileLoader()
	schema, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	user, ok := schema.Tables["user"]
	if !ok {
		t.Fatal("expected user table")
	}
	if len(user.Fields) != 1 || user.Fields[0].Assert != "$value != NONE" {
		t.Errorf("unexpected user fields: %+v", user.Fields)
	}
	if len(user.Indexes) != 1 || !user.Indexes[0].Unique {
		t.Errorf("unexpected user indexes: %+v", user.Indexes)
	}

	follows, ok := schema.Tables["follows"]
	if !ok || follows.Relation == nil {
		t.Fatal("expected follows relation table")
	}
	if follows.Relation.From != "user" || follows.Relation.To != "user" || !follows.Relation.Enforced {
		t.Errorf("unexpected relation: %+v", follows.Relation)
	}

	fn, ok := schema.Functions["greet"]
	if !ok || fn.ReturnType != "string" || len(fn.Parameters) != 1 {
		t.Errorf("unexpected function: %+v", fn)
	}

	param, ok := schema.Params["maxItems"]
	if !ok || param.Value != "100" {
		t.Errorf("unexpected param: %+v", param)
	}

	user2, ok := schema.Users["admin"]
	if !ok || user2.Level != "DATABASE" || len(user2.Roles) != 1 || user2.Roles[0] != "OWNER" {
		t.Errorf("unexpected user: %+v", user2)
	}
}

func TestLoadEmptyDocumentProducesEmptySchema(t *testing.T) {
	path := writeSchema(t, "{}")
	l := NewJSONFileLoader()
	schema, err := l.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(schema.Tables) != 0 {
		t.Fatalf("expected no tables, got %+v", schema.Tables)
	}
}
