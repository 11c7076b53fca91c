package diff

import (
	"reflect"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
)

func diffAnalyzers(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Analyzers {
		c, ok := current.Analyzers[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindAnalyzer, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !analyzersEqual(*c, *d) {
			modifies = append(modifies, model.Change{Kind: model.KindAnalyzer, Entity: name, Operation: model.OpModify,
				Details: model.AnalyzerModifyDetails{Old: *c, New: *d}})
		}
	}
	for name, c := range current.Analyzers {
		if _, ok := desired.Analyzers[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindAnalyzer, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func analyzersEqual(a, b model.Analyzer) bool {
	return reflect.DeepEqual(sortedUpper(a.Tokenizers), sortedUpper(b.Tokenizers)) &&
		reflect.DeepEqual(sortedUpper(a.Filters), sortedUpper(b.Filters))
}

func analyzerStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		a := c.Details.(model.Analyzer)
		return []string{generate.Analyzer(a, false)}, []string{generate.AnalyzerRemove(a.Name)}
	case model.OpRemove:
		a := c.Details.(model.Analyzer)
		return []string{generate.AnalyzerRemove(a.Name)}, []string{generate.Analyzer(a, false)}
	case model.OpModify:
		d := c.Details.(model.AnalyzerModifyDetails)
		return []string{generate.Analyzer(d.New, true)}, []string{generate.Analyzer(d.Old, true)}
	}
	return nil, nil
}
