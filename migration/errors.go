package migration

import "errors"

// Sentinel errors identifying the failure taxonomy. Wrapped with
// fmt.Errorf("%w: %v", ErrX, err) so callers can use errors.Is while still
// getting a message with context.
var (
	ErrConnection         = errors.New("connection error")
	ErrIntrospection      = errors.New("introspection error")
	ErrParse              = errors.New("parse error")
	ErrNoChanges          = errors.New("no changes")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrEmptyRollback      = errors.New("empty rollback")
	ErrRollbackFailed     = errors.New("rollback execution failed")
	ErrMigrationFailed    = errors.New("migration execution failed")
	ErrSchemaLoad         = errors.New("schema load error")
	ErrNothingToRollback  = errors.New("nothing to roll back")
)
