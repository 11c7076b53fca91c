package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var eventPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+EVENT\s+(OVERWRITE\s+)?`)
var eventHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)\s+WHEN\s+(.*)$`)

// ParseEvent parses one "DEFINE EVENT ... WHEN ... THEN ..." statement.
// THEN is extracted as a statement string that may be a bare expression or
// a braced block; brace depth is tracked so a semicolon inside the block
// doesn't get mistaken for the statement terminator.
func ParseEvent(stmt string) (table string, ev model.Event, err error) {
	trimmed := strings.TrimSpace(stmt)
	body := eventPrefixRe.ReplaceAllString(trimmed, "")

	m := eventHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return "", model.Event{}, fmt.Errorf("introspect: unrecognized DEFINE EVENT statement: %q", stmt)
	}
	ev.Name = m[1]
	table = m[2]
	rest := m[3]

	when, then, err := splitWhenThen(rest)
	if err != nil {
		return "", model.Event{}, fmt.Errorf("introspect: %w in statement: %q", err, stmt)
	}
	ev.When = strings.TrimSpace(when)
	ev.Then = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(then), ";"))
	return table, ev, nil
}

// splitWhenThen splits "<condition> THEN <statement>" honoring nesting, so
// a THEN appearing inside a parenthesized condition isn't mistaken for the
// clause boundary.
func splitWhenThen(s string) (when, then string, err error) {
	scanner := newClauseScanner(s, []string{"THEN"})
	positions := scanner.topLevelKeywordPositions()
	if len(positions) == 0 {
		return "", "", fmt.Errorf("missing THEN clause")
	}
	pos := positions[0]
	when = s[:pos.index]
	then = strings.TrimSpace(s[pos.index+len(pos.keyword):])
	return when, then, nil
}
