package diff

import (
	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/model"
)

// diffSequences compares sequences. Sequences are never modified in place;
// any difference is drop+create (§4.3 step 8).
func diffSequences(desired, current *model.Schema) []model.Change {
	var creates, modifies, removes []model.Change
	for name, d := range desired.Sequences {
		c, ok := current.Sequences[name]
		if !ok {
			creates = append(creates, model.Change{Kind: model.KindSequence, Entity: name, Operation: model.OpCreate, Details: *d})
			continue
		}
		if !sequencesEqual(*c, *d) {
			modifies = append(modifies, model.Change{Kind: model.KindSequence, Entity: name, Operation: model.OpRecreate,
				Details: model.SequenceRecreateDetails{Old: *c, New: *d}})
		}
	}
	for name, c := range current.Sequences {
		if _, ok := desired.Sequences[name]; !ok {
			removes = append(removes, model.Change{Kind: model.KindSequence, Entity: name, Operation: model.OpRemove, Details: *c})
		}
	}
	out := append(creates, modifies...)
	return append(out, removes...)
}

func sequencesEqual(a, b model.Sequence) bool {
	if (a.Start == nil) != (b.Start == nil) {
		return false
	}
	return a.Start == nil || *a.Start == *b.Start
}

func sequenceStatements(c model.Change) (forward, backward []string) {
	switch c.Operation {
	case model.OpCreate:
		s := c.Details.(model.Sequence)
		return []string{generate.Sequence(s)}, []string{generate.SequenceRemove(s.Name)}
	case model.OpRemove:
		s := c.Details.(model.Sequence)
		return []string{generate.SequenceRemove(s.Name)}, []string{generate.Sequence(s)}
	case model.OpRecreate:
		d := c.Details.(model.SequenceRecreateDetails)
		return []string{generate.SequenceRemove(d.Old.Name), generate.Sequence(d.New)},
			[]string{generate.SequenceRemove(d.New.Name), generate.Sequence(d.Old)}
	}
	return nil, nil
}
