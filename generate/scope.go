package generate

import (
	"fmt"

	"github.com/schemasync/schemasync/model"
)

// Scope emits a DEFINE ACCESS (or DEFINE ACCESS OVERWRITE) statement for a
// database-wide RECORD access scope.
func Scope(s model.Scope, overwrite bool) string {
	keyword := "DEFINE ACCESS"
	if overwrite {
		keyword = "DEFINE ACCESS OVERWRITE"
	}
	head := fmt.Sprintf("%s %s ON DATABASE TYPE RECORD", keyword, s.Name)

	signupClause := ""
	if s.Signup != "" {
		signupClause = fmt.Sprintf("SIGNUP (%s)", s.Signup)
	}
	signinClause := ""
	if s.Signin != "" {
		signinClause = fmt.Sprintf("SIGNIN (%s)", s.Signin)
	}
	durationClause := ""
	if s.Session != "" {
		durationClause = "DURATION FOR SESSION " + s.Session
	}

	return statement(join(head, signupClause, signinClause, durationClause))
}

// ScopeRemove emits REMOVE ACCESS <name> ON DATABASE;
func ScopeRemove(name string) string {
	return statement(fmt.Sprintf("REMOVE ACCESS %s ON DATABASE", name))
}

// ScopeRename emits ALTER ACCESS <old> RENAME TO <new>;
func ScopeRename(oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER ACCESS %s RENAME TO %s", oldName, newName))
}
