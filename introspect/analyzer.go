package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var analyzerPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+ANALYZER\s+(OVERWRITE\s+)?`)
var analyzerHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s*(.*)$`)
var analyzerClauseKeywords = []string{"TOKENIZERS", "FILTERS"}

// ParseAnalyzer parses one "DEFINE ANALYZER ..." statement.
func ParseAnalyzer(stmt string) (model.Analyzer, error) {
	trimmed := strings.TrimSpace(stmt)
	body := analyzerPrefixRe.ReplaceAllString(trimmed, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := analyzerHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return model.Analyzer{}, fmt.Errorf("introspect: unrecognized DEFINE ANALYZER statement: %q", stmt)
	}

	a := model.Analyzer{Name: m[1]}
	scanner := newClauseScanner(m[2], analyzerClauseKeywords)
	for _, span := range scanner.scan() {
		list := splitColumns(span.body)
		switch strings.ToUpper(span.keyword) {
		case "TOKENIZERS":
			a.Tokenizers = list
		case "FILTERS":
			a.Filters = list
		}
	}
	return a, nil
}
