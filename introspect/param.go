package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var paramRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+PARAM\s+\$(\S+)\s+VALUE\s+(.*?)\s*;?\s*$`)

// ParseParam parses one "DEFINE PARAM $n VALUE e" statement.
func ParseParam(stmt string) (model.Param, error) {
	m := paramRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return model.Param{}, fmt.Errorf("introspect: unrecognized DEFINE PARAM statement: %q", stmt)
	}
	return model.Param{Name: m[1], Value: m[2]}, nil
}

var sequenceRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+SEQUENCE\s+(\S+)\s*(?:START\s+(-?\d+))?\s*;?\s*$`)

// ParseSequence parses one "DEFINE SEQUENCE n [START n]" statement.
func ParseSequence(stmt string) (model.Sequence, error) {
	m := sequenceRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return model.Sequence{}, fmt.Errorf("introspect: unrecognized DEFINE SEQUENCE statement: %q", stmt)
	}
	seq := model.Sequence{Name: m[1]}
	if m[2] != "" {
		var start int64
		if _, err := fmt.Sscanf(m[2], "%d", &start); err == nil {
			seq.Start = &start
		}
	}
	return seq, nil
}
