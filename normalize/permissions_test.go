package normalize

import "testing"

func TestPermissionsCollapsesToFull(t *testing.T) {
	for _, in := range []string{"", "FULL", "full", "FOR FULL"} {
		if got := Permissions(in); got != "FULL" {
			t.Errorf("Permissions(%q) = %q, want FULL", in, got)
		}
	}
}

func TestPermissionsStripsDeleteClause(t *testing.T) {
	got := Permissions("FOR select FULL, FOR delete NONE")
	if got == "" {
		t.Fatal("Permissions returned empty string")
	}
	for _, bad := range []string{"delete", "DELETE"} {
		if containsWord(got, bad) {
			t.Errorf("Permissions(...) = %q still contains the deprecated DELETE clause", got)
		}
	}
}

func TestPermissionsEqual(t *testing.T) {
	if !PermissionsEqual("", "FULL") {
		t.Fatal("empty and FULL should be permissions-equal")
	}
	if !PermissionsEqual("FOR select FULL  FOR create FULL", "FOR select FULL, FOR create FULL") {
		t.Fatal("missing comma between FOR clauses should not register as a difference")
	}
}

func containsWord(s, word string) bool {
	for i := 0; i+len(word) <= len(s); i++ {
		if s[i:i+len(word)] == word {
			return true
		}
	}
	return false
}
