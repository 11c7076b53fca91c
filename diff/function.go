package diff

import (
	"reflect"
	"strings"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
	"github.com/schemasync/schemasync/normalize"
)

// diffFunctions compares the function collections. Modifications always
// emit DEFINE FUNCTION OVERWRITE (§4.3 step 6); bodies and signatures are
// compared through the semantic normalizer.
func diffFunctions(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Functions {
		c, ok := current.Functions[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindFunction, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !functionsEqual(*c, *d) {
			modifies = append(modifies, model.Change{Kind: model.KindFunction, Entity: name, Operation: model.OpModify,
				Details: model.FunctionModifyDetails{Old: *c, New: *d}})
		}
	}
	for name, c := range current.Functions {
		if _, ok := desired.Functions[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindFunction, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func functionsEqual(a, b model.Function) bool {
	if !reflect.DeepEqual(a.Parameters, b.Parameters) {
		return false
	}
	if !normalize.Equal(a.ReturnType, b.ReturnType) {
		return false
	}
	return normalize.FunctionBodyEqual(a.Body, b.Body)
}

func functionStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		f := c.Details.(model.Function)
		return []string{generate.Function(f, false)}, []string{generate.FunctionRemove(f.Name)}
	case model.OpRemove:
		f := c.Details.(model.Function)
		return []string{generate.FunctionRemove(f.Name)}, []string{generate.Function(f, false)}
	case model.OpModify:
		d := c.Details.(model.FunctionModifyDetails)
		return []string{generate.Function(d.New, true)}, []string{generate.Function(d.Old, true)}
	}
	return nil, nil
}

func sortedUpper(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	sortStrings(out)
	return out
}

func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}
