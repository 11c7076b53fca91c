package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var functionPrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+FUNCTION\s+(OVERWRITE\s+)?`)
var functionHeaderRe = regexp.MustCompile(`(?is)^fn::(\S+?)\s*\(([^)]*)\)\s*(?:->\s*(\S+))?\s*\{(.*)\}\s*$`)

// ParseFunction parses one "DEFINE FUNCTION fn::name(...) -> T { body }"
// statement.
func ParseFunction(stmt string) (model.Function, error) {
	trimmed := strings.TrimSpace(stmt)
	body := functionPrefixRe.ReplaceAllString(trimmed, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := functionHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return model.Function{}, fmt.Errorf("introspect: unrecognized DEFINE FUNCTION statement: %q", stmt)
	}

	fn := model.Function{Name: "fn::" + m[1], ReturnType: m[3], Body: strings.TrimSpace(m[4])}
	fn.Parameters = parseFunctionParams(m[2])
	return fn, nil
}

func parseFunctionParams(raw string) []model.FunctionParam {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var params []model.FunctionParam
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		nameType := strings.SplitN(part, ":", 2)
		if len(nameType) != 2 {
			continue
		}
		params = append(params, model.FunctionParam{
			Name: strings.TrimPrefix(strings.TrimSpace(nameType[0]), "$"),
			Type: strings.TrimSpace(nameType[1]),
		})
	}
	return params
}
