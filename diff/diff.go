// Package diff compares a desired schema against a current (introspected)
// schema and produces an ordered list of changes plus the forward and
// rollback statement batches that realize them (§4.3).
package diff

import (
	"strings"

	"github.com/schemasync/schemasync/model"
)

// Result is the output of a full diff: the forward script, the rollback
// script, and the structured change log both were built from.
type Result struct {
	Up      string
	Down    string
	Changes []model.Change
}

// Diff compares desired against current and returns the full result.
func Diff(desired, current *model.Schema) *Result {
	changes := collectChanges(desired, current)

	var up, down []string
	for _, c := range changes {
		f, _ := statementsFor(c)
		up = append(up, f...)
	}
	for i := len(changes) - 1; i >= 0; i-- {
		_, b := statementsFor(changes[i])
		down = append(down, b...)
	}

	return &Result{
		Up:      strings.Join(up, "\n"),
		Down:    strings.Join(down, "\n"),
		Changes: changes,
	}
}

// HasChanges is the fast-path predicate: it stops as soon as one entity-kind
// produces a non-empty change list, agreeing with len(Diff(...).Changes) > 0
// without necessarily computing every kind.
func HasChanges(desired, current *model.Schema) bool {
	if len(diffTables(desired, current, false)) > 0 {
		return true
	}
	if len(diffTables(desired, current, true)) > 0 {
		return true
	}
	if len(diffFunctions(desired, current)) > 0 {
		return true
	}
	if len(diffAnalyzers(desired, current)) > 0 {
		return true
	}
	if len(diffScopes(desired, current)) > 0 {
		return true
	}
	if len(diffParams(desired, current)) > 0 {
		return true
	}
	if len(diffSequences(desired, current)) > 0 {
		return true
	}
	if len(diffUsers(desired, current)) > 0 {
		return true
	}
	return false
}

// collectChanges runs every entity-kind's diff in the fixed forward-script
// order: tables, then relations, then functions, analyzers, scopes, params,
// sequences, users.
func collectChanges(desired, current *model.Schema) []model.Change {
	var changes []model.Change
	changes = append(changes, diffTables(desired, current, false)...)
	changes = append(changes, diffTables(desired, current, true)...)
	changes = append(changes, diffFunctions(desired, current)...)
	changes = append(changes, diffAnalyzers(desired, current)...)
	changes = append(changes, diffScopes(desired, current)...)
	changes = append(changes, diffParams(desired, current)...)
	changes = append(changes, diffSequences(desired, current)...)
	changes = append(changes, diffUsers(desired, current)...)
	return changes
}

// statementsFor returns the forward and backward statements a single change
// contributes to the up/down scripts.
func statementsFor(c model.Change) (forward, backward []string) {
	switch c.Kind {
	case model.KindTable:
		return tableStatements(c)
	case model.KindField:
		return fieldStatements(c)
	case model.KindIndex:
		return indexStatements(c)
	case model.KindEvent:
		return eventStatements(c)
	case model.KindFunction:
		return functionStatements(c)
	case model.KindAnalyzer:
		return analyzerStatements(c)
	case model.KindScope:
		return scopeStatements(c)
	case model.KindParam:
		return paramStatements(c)
	case model.KindSequence:
		return sequenceStatements(c)
	case model.KindUser:
		return userStatements(c)
	}
	return nil, nil
}
