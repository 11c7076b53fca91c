package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var scopePrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+ACCESS\s+(OVERWRITE\s+)?`)
var scopeHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s+ON\s+DATABASE\s+TYPE\s+RECORD\s*(.*)$`)

var scopeClauseKeywords = []string{"SIGNUP", "SIGNIN", "DURATION"}

// ParseScope parses one "DEFINE ACCESS ... ON DATABASE TYPE RECORD ..."
// statement into a model.Scope.
func ParseScope(stmt string) (model.Scope, error) {
	trimmed := strings.TrimSpace(stmt)
	body := scopePrefixRe.ReplaceAllString(trimmed, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := scopeHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return model.Scope{}, fmt.Errorf("introspect: unrecognized DEFINE ACCESS statement: %q", stmt)
	}

	scope := model.Scope{Name: m[1]}
	scanner := newClauseScanner(m[2], scopeClauseKeywords)
	for _, span := range scanner.scan() {
		switch strings.ToUpper(span.keyword) {
		case "SIGNUP":
			scope.Signup = unwrapParens(span.body)
		case "SIGNIN":
			scope.Signin = unwrapParens(span.body)
		case "DURATION":
			scope.Session = parseSessionDuration(span.body)
		}
	}
	return scope, nil
}

func unwrapParens(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

var sessionDurationRe = regexp.MustCompile(`(?i)FOR\s+SESSION\s+(\S+)`)

func parseSessionDuration(s string) string {
	if m := sessionDurationRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
