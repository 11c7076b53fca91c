package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var userPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+USER\s+(OVERWRITE\s+)?`)
var userHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s+ON\s+(ROOT|NAMESPACE|DATABASE)\s*(.*)$`)
var userClauseKeywords = []string{"PASSWORD", "ROLES"}

// ParseUser parses one "DEFINE USER ... ON <level> ..." statement.
func ParseUser(stmt string) (model.User, error) {
	trimmed := strings.TrimSpace(stmt)
	body := userPrefixRe.ReplaceAllString(trimmed, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := userHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return model.User{}, fmt.Errorf("introspect: unrecognized DEFINE USER statement: %q", stmt)
	}

	u := model.User{Name: m[1], Level: model.UserLevel(strings.ToUpper(m[2]))}
	scanner := newClauseScanner(m[3], userClauseKeywords)
	for _, span := range scanner.scan() {
		switch strings.ToUpper(span.keyword) {
		case "PASSWORD":
			u.Password = stripQuotes(span.body)
		case "ROLES":
			for _, r := range splitColumns(span.body) {
				u.Roles = append(u.Roles, model.UserRole(strings.ToUpper(r)))
			}
		}
	}
	return u, nil
}
