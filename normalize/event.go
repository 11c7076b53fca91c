package normalize

import "strings"

// controlKeywords trigger wrapping a bare THEN statement in braces, since
// the definition language requires a block for multi-statement bodies.
var controlKeywords = []string{"FOR", "IF", "LET"}

// EventThen canonicalizes an event's THEN clause: a statement that already
// starts with "{" and ends with "}" is preserved as-is (after whitespace
// collapsing); otherwise it is wrapped in "{ ... }" when it contains a
// semicolon or any control keyword, since that signals a multi-statement
// body rather than a bare expression.
func EventThen(s string) string {
	s = collapseWhitespace(s)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s
	}
	if strings.Contains(s, ";") || containsControlKeyword(s) {
		return "{ " + strings.TrimSuffix(strings.TrimSpace(s), ";") + "; }"
	}
	return s
}

func containsControlKeyword(s string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range controlKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// EventThenEqual compares two THEN clauses after canonicalization.
func EventThenEqual(a, b string) bool {
	return EventThen(a) == EventThen(b)
}
