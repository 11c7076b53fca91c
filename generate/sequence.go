package generate

import (
	"strconv"

	"github.com/schemasync/schemasync/model"
)

// Sequence emits DEFINE SEQUENCE <n> [START <n>];
func Sequence(s model.Sequence) string {
	startClause := ""
	if s.Start != nil {
		startClause = "START " + strconv.FormatInt(*s.Start, 10)
	}
	return statement(join("DEFINE SEQUENCE "+s.Name, startClause))
}

// SequenceRemove emits REMOVE SEQUENCE <n>;
func SequenceRemove(name string) string {
	return statement("REMOVE SEQUENCE " + name)
}
