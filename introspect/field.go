package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var fieldPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+FIELD\s+`)

var fieldHeaderRe = regexp.MustCompile(`(?is)^(OVERWRITE\s+)?(IF\s+NOT\s+EXISTS\s+)?(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)\s*(.*)$`)

var fieldClauseKeywords = []string{
	"FLEXIBLE", "FLEX", "TYPE", "VALUE", "ASSERT", "DEFAULT",
	"OPTIONAL", "READONLY", "PERMISSIONS", "COMMENT",
}

// ParseField parses one "DEFINE FIELD ..." statement into a model.Field.
// It returns the parent table name alongside the field, since that's not
// part of the Field struct itself.
func ParseField(stmt string) (table string, field model.Field, err error) {
	body := fieldPrefixRe.ReplaceAllString(strings.TrimSpace(stmt), "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := fieldHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return "", model.Field{}, fmt.Errorf("introspect: unrecognized DEFINE FIELD statement: %q", stmt)
	}

	field.Overwrite = strings.TrimSpace(m[1]) != ""
	field.IfNotExists = strings.TrimSpace(m[2]) != ""
	field.Name = m[3]
	table = m[4]
	rest := m[5]

	scanner := newClauseScanner(rest, fieldClauseKeywords)
	for _, span := range scanner.scan() {
		switch strings.ToUpper(span.keyword) {
		case "FLEXIBLE", "FLEX":
			field.Flexible = true
		case "TYPE":
			field.Type = span.body
		case "VALUE":
			field.Value = span.body
		case "ASSERT":
			field.Assert = span.body
		case "DEFAULT":
			field.Default = span.body
		case "OPTIONAL":
			field.Optional = true
		case "READONLY":
			field.Readonly = true
		case "PERMISSIONS":
			field.Permissions = span.body
		case "COMMENT":
			field.Comment = stripQuotes(span.body)
		}
	}

	if strings.HasPrefix(strings.TrimSpace(field.Type), "option<") {
		field.Optional = true
	}

	return table, field, nil
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
