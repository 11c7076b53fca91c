// Package generate holds pure functions that turn model entities into the
// database's own definition-language statements: X (for example Table or
// Field) for the full forward DEFINE, XAlter for a granular property
// modifier, and XRemove for the reverse REMOVE statement. None of these functions touch a database;
// each is total and deterministic given its input.
package generate

import "strings"

// join concatenates non-empty clause fragments with a single space.
func join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// statement appends the trailing semicolon every emitted statement carries.
func statement(body string) string {
	return strings.TrimRight(body, ";") + ";"
}

// quote renders a string literal the way the definition language spells
// one: single-quoted, with embedded single quotes escaped.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}
