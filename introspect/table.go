package introspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemasync/schemasync/model"
)

var tablePrefixRe = regexp.MustCompile(`(?is)^\s*DEFINE\s+TABLE\s+(OVERWRITE\s+)?`)
var tableHeaderRe = regexp.MustCompile(`(?is)^(\S+)\s*(.*)$`)
var tableClauseKeywords = []string{"TYPE", "SCHEMAFULL", "SCHEMALESS", "COMMENT"}
var recordTypeRe = regexp.MustCompile(`(?i)record\s*<\s*([a-zA-Z0-9_]+)\s*>`)

// ParseTableHeader parses a bare "DEFINE TABLE <name> ..." statement
// (without any field/index/event information — those are supplied
// separately by ParseField/ParseIndex/ParseEvent and attached by the
// caller). Whether the table is a relation is decided later, once its
// fields are known: a table is classified as a relation iff it carries
// both an "in" and an "out" field — never by a naming heuristic.
func ParseTableHeader(stmt string) (model.Table, error) {
	trimmed := strings.TrimSpace(stmt)
	if !tablePrefixRe.MatchString(trimmed) {
		return model.Table{}, fmt.Errorf("introspect: unrecognized DEFINE TABLE statement: %q", stmt)
	}
	body := tablePrefixRe.ReplaceAllString(trimmed, "")
	body = strings.TrimSuffix(strings.TrimSpace(body), ";")

	m := tableHeaderRe.FindStringSubmatch(body)
	if m == nil {
		return model.Table{}, fmt.Errorf("introspect: unrecognized DEFINE TABLE statement: %q", stmt)
	}

	t := model.Table{Name: m[1]}
	scanner := newClauseScanner(m[2], tableClauseKeywords)
	for _, span := range scanner.scan() {
		switch strings.ToUpper(span.keyword) {
		case "TYPE":
			parseTableTypeClause(span.body, &t)
		case "SCHEMAFULL":
			t.Schemafull = true
		case "SCHEMALESS":
			t.Schemafull = false
		case "COMMENT":
			t.Comment = stripQuotes(span.body)
		}
	}
	return t, nil
}

func parseTableTypeClause(body string, t *model.Table) {
	if !strings.Contains(strings.ToUpper(body), "RELATION") {
		return
	}
	rel := &model.RelationInfo{From: model.UnknownEndpoint, To: model.UnknownEndpoint}
	if m := regexp.MustCompile(`(?i)IN\s+(\S+)`).FindStringSubmatch(body); m != nil {
		rel.From = m[1]
	}
	if m := regexp.MustCompile(`(?i)OUT\s+(\S+)`).FindStringSubmatch(body); m != nil {
		rel.To = m[1]
	}
	rel.Enforced = strings.Contains(strings.ToUpper(body), "ENFORCED")
	t.Relation = rel
}

// ClassifyRelation applies the spec's relation discriminator: a table is a
// relation iff its field set contains both "in" and "out". When it is, and
// the table carried no explicit TYPE RELATION clause (or one with
// unresolved endpoints), endpoints are additionally derived by parsing
// record<X> out of the in/out fields' types, defaulting to "unknown".
func ClassifyRelation(t *model.Table) {
	hasIn, hasOut := false, false
	var inType, outType string
	for _, f := range t.Fields {
		switch f.Name {
		case "in":
			hasIn = true
			inType = f.Type
		case "out":
			hasOut = true
			outType = f.Type
		}
	}
	if !hasIn || !hasOut {
		return
	}
	if t.Relation == nil {
		t.Relation = &model.RelationInfo{From: model.UnknownEndpoint, To: model.UnknownEndpoint}
	}
	if t.Relation.From == "" || t.Relation.From == model.UnknownEndpoint {
		t.Relation.From = recordTarget(inType)
	}
	if t.Relation.To == "" || t.Relation.To == model.UnknownEndpoint {
		t.Relation.To = recordTarget(outType)
	}
}

func recordTarget(fieldType string) string {
	if m := recordTypeRe.FindStringSubmatch(fieldType); m != nil {
		return m[1]
	}
	return model.UnknownEndpoint
}
