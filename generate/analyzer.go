package generate

import (
	"fmt"
	"strings"

	"github.com/schemasync/schemasync/model"
)

// Analyzer emits a DEFINE ANALYZER (or DEFINE ANALYZER OVERWRITE) statement.
func Analyzer(a model.Analyzer, overwrite bool) string {
	keyword := "DEFINE ANALYZER"
	if overwrite {
		keyword = "DEFINE ANALYZER OVERWRITE"
	}
	head := fmt.Sprintf("%s %s", keyword, a.Name)

	tokenizersClause := ""
	if len(a.Tokenizers) > 0 {
		tokenizersClause = "TOKENIZERS " + strings.Join(a.Tokenizers, ", ")
	}
	filtersClause := ""
	if len(a.Filters) > 0 {
		filtersClause = "FILTERS " + strings.Join(a.Filters, ", ")
	}

	return statement(join(head, tokenizersClause, filtersClause))
}

// AnalyzerRemove emits REMOVE ANALYZER <name>;
func AnalyzerRemove(name string) string {
	return statement("REMOVE ANALYZER " + name)
}

// AnalyzerRename emits ALTER ANALYZER <old> RENAME TO <new>;
func AnalyzerRename(oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER ANALYZER %s RENAME TO %s", oldName, newName))
}
