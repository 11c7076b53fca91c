package generate

import (
	"fmt"
	"strings"

	"github.com/schemasync/schemasync/model"
)

func functionSignature(f model.Function) string {
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, fmt.Sprintf("$%s: %s", p.Name, p.Type))
	}
	sig := fmt.Sprintf("fn::%s(%s)", strings.TrimPrefix(f.Name, "fn::"), strings.Join(params, ", "))
	if f.ReturnType != "" {
		sig += " -> " + f.ReturnType
	}
	return sig
}

// Function emits a DEFINE FUNCTION (or DEFINE FUNCTION OVERWRITE) statement.
func Function(f model.Function, overwrite bool) string {
	keyword := "DEFINE FUNCTION"
	if overwrite {
		keyword = "DEFINE FUNCTION OVERWRITE"
	}
	return statement(fmt.Sprintf("%s %s { %s }", keyword, functionSignature(f), strings.TrimSpace(f.Body)))
}

// FunctionRemove emits REMOVE FUNCTION fn::<name>;
func FunctionRemove(name string) string {
	return statement("REMOVE FUNCTION fn::" + strings.TrimPrefix(name, "fn::"))
}

// FunctionRename emits ALTER FUNCTION fn::<old> RENAME TO fn::<new>;
func FunctionRename(oldName, newName string) string {
	return statement(fmt.Sprintf("ALTER FUNCTION fn::%s RENAME TO fn::%s",
		strings.TrimPrefix(oldName, "fn::"), strings.TrimPrefix(newName, "fn::")))
}
