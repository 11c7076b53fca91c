package generate

import (
	"fmt"

	"github.com/schemasync/schemasync/model"
)

// Event emits a DEFINE EVENT (or DEFINE EVENT OVERWRITE) statement.
func Event(table string, ev model.Event, overwrite bool) string {
	keyword := "DEFINE EVENT"
	if overwrite {
		keyword = "DEFINE EVENT OVERWRITE"
	}
	return statement(fmt.Sprintf("%s %s ON TABLE %s WHEN %s THEN %s", keyword, ev.Name, table, ev.When, ev.Then))
}

// EventRemove emits REMOVE EVENT <name> ON TABLE <table>;
func EventRemove(table, name string) string {
	return statement(fmt.Sprintf("REMOVE EVENT %s ON TABLE %s", name, table))
}
