package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schemasync/schemasync/model"
)

// JSONFileLoader reads a desired schema from a single JSON document. The
// top-level keys mirror model.Schema's collections; missing keys are
// treated as empty.
type JSONFileLoader struct{}

// NewJSONFileLoader returns a Loader backed by the JSON document format.
func NewJSONFileLoader() *JSONFileLoader { return &JSONFileLoader{} }

// schemaDoc is the on-disk shape. Field names match the authoring format;
// they are converted into model's name-keyed maps on load.
type schemaDoc struct {
	Tables    []tableDoc    `json:"tables"`
	Functions []functionDoc `json:"functions"`
	Scopes    []scopeDoc    `json:"scopes"`
	Analyzers []analyzerDoc `json:"analyzers"`
	Params    []paramDoc    `json:"params"`
	Sequences []sequenceDoc `json:"sequences"`
	Users     []userDoc     `json:"users"`
}

type relationDoc struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Enforced bool   `json:"enforced"`
}

type tableDoc struct {
	Name       string       `json:"name"`
	Schemafull bool         `json:"schemafull"`
	Comment    string       `json:"comment,omitempty"`
	Relation   *relationDoc `json:"relation,omitempty"`
	Fields     []fieldDoc   `json:"fields,omitempty"`
	Indexes    []indexDoc   `json:"indexes,omitempty"`
	Events     []eventDoc   `json:"events,omitempty"`
}

type fieldDoc struct {
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Optional     bool     `json:"optional,omitempty"`
	Readonly     bool     `json:"readonly,omitempty"`
	Flexible     bool     `json:"flexible,omitempty"`
	Default      string   `json:"default,omitempty"`
	Value        string   `json:"value,omitempty"`
	Assert       string   `json:"assert,omitempty"`
	Permissions  string   `json:"permissions,omitempty"`
	Comment      string   `json:"comment,omitempty"`
	PreviousName []string `json:"previousName,omitempty"`
}

type indexDoc struct {
	Name       string   `json:"name"`
	Columns    []string `json:"columns"`
	Unique     bool     `json:"unique,omitempty"`
	Type       string   `json:"type,omitempty"`
	Analyzer   string   `json:"analyzer,omitempty"`
	Highlights bool     `json:"highlights,omitempty"`
	BM25       bool     `json:"bm25,omitempty"`
	BM25K1     float64  `json:"bm25K1,omitempty"`
	BM25B      float64  `json:"bm25B,omitempty"`
	Dimension  int      `json:"dimension,omitempty"`
	Dist       string   `json:"dist,omitempty"`
	Capacity   int      `json:"capacity,omitempty"`
	EFC        int      `json:"efc,omitempty"`
	M          int      `json:"m,omitempty"`
	M0         int      `json:"m0,omitempty"`
	LM         float64  `json:"lm,omitempty"`
}

type eventDoc struct {
	Name string `json:"name"`
	When string `json:"when"`
	Then string `json:"then"`
}

type functionParamDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type functionDoc struct {
	Name       string             `json:"name"`
	Parameters []functionParamDoc `json:"parameters,omitempty"`
	ReturnType string             `json:"returnType,omitempty"`
	Body       string             `json:"body"`
}

type scopeDoc struct {
	Name    string `json:"name"`
	Session string `json:"session,omitempty"`
	Signup  string `json:"signup,omitempty"`
	Signin  string `json:"signin,omitempty"`
}

type analyzerDoc struct {
	Name       string   `json:"name"`
	Tokenizers []string `json:"tokenizers,omitempty"`
	Filters    []string `json:"filters,omitempty"`
}

type paramDoc struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sequenceDoc struct {
	Name  string `json:"name"`
	Start *int64 `json:"start,omitempty"`
}

type userDoc struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Password string   `json:"password,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// Load reads and decodes the JSON document at path into a model.Schema.
func (l *JSONFileLoader) Load(path string) (*model.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	var doc schemaDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}
	return doc.toSchema(), nil
}

func (d schemaDoc) toSchema() *model.Schema {
	s := model.NewSchema()
	for _, t := range d.Tables {
		table := t.toModel()
		s.Tables[table.Name] = &table
	}
	for _, f := range d.Functions {
		fn := f.toModel()
		s.Functions[fn.Name] = &fn
	}
	for _, sc := range d.Scopes {
		scope := sc.toModel()
		s.Scopes[scope.Name] = &scope
	}
	for _, a := range d.Analyzers {
		an := a.toModel()
		s.Analyzers[an.Name] = &an
	}
	for _, p := range d.Params {
		param := p.toModel()
		s.Params[param.Name] = &param
	}
	for _, sq := range d.Sequences {
		seq := sq.toModel()
		s.Sequences[seq.Name] = &seq
	}
	for _, u := range d.Users {
		user := u.toModel()
		s.Users[user.Name] = &user
	}
	return s
}

func (t tableDoc) toModel() model.Table {
	out := model.Table{
		Name:       t.Name,
		Schemafull: t.Schemafull,
		Comment:    t.Comment,
	}
	if t.Relation != nil {
		out.Relation = &model.RelationInfo{From: t.Relation.From, To: t.Relation.To, Enforced: t.Relation.Enforced}
	}
	for _, f := range t.Fields {
		out.Fields = append(out.Fields, f.toModel())
	}
	for _, idx := range t.Indexes {
		out.Indexes = append(out.Indexes, idx.toModel())
	}
	for _, ev := range t.Events {
		out.Events = append(out.Events, model.Event{Name: ev.Name, When: ev.When, Then: ev.Then})
	}
	return out
}

func (f fieldDoc) toModel() model.Field {
	return model.Field{
		Name:         f.Name,
		Type:         f.Type,
		Optional:     f.Optional,
		Readonly:     f.Readonly,
		Flexible:     f.Flexible,
		Default:      f.Default,
		Value:        f.Value,
		Assert:       f.Assert,
		Permissions:  f.Permissions,
		Comment:      f.Comment,
		PreviousName: f.PreviousName,
	}
}

func (idx indexDoc) toModel() model.Index {
	return model.Index{
		Name:       idx.Name,
		Columns:    idx.Columns,
		Unique:     idx.Unique,
		Type:       model.IndexType(idx.Type),
		Analyzer:   idx.Analyzer,
		Highlights: idx.Highlights,
		BM25:       idx.BM25,
		BM25K1:     idx.BM25K1,
		BM25B:      idx.BM25B,
		Dimension:  idx.Dimension,
		Dist:       model.DistanceMetric(idx.Dist),
		Capacity:   idx.Capacity,
		EFC:        idx.EFC,
		M:          idx.M,
		M0:         idx.M0,
		LM:         idx.LM,
	}
}

func (f functionDoc) toModel() model.Function {
	out := model.Function{Name: f.Name, ReturnType: f.ReturnType, Body: f.Body}
	for _, p := range f.Parameters {
		out.Parameters = append(out.Parameters, model.FunctionParam{Name: p.Name, Type: p.Type})
	}
	return out
}

func (sc scopeDoc) toModel() model.Scope {
	return model.Scope{Name: sc.Name, Session: sc.Session, Signup: sc.Signup, Signin: sc.Signin}
}

func (a analyzerDoc) toModel() model.Analyzer {
	return model.Analyzer{Name: a.Name, Tokenizers: a.Tokenizers, Filters: a.Filters}
}

func (p paramDoc) toModel() model.Param {
	return model.Param{Name: p.Name, Value: p.Value}
}

func (sq sequenceDoc) toModel() model.Sequence {
	return model.Sequence{Name: sq.Name, Start: sq.Start}
}

func (u userDoc) toModel() model.User {
	out := model.User{Name: u.Name, Level: model.UserLevel(u.Level), Password: u.Password}
	for _, r := range u.Roles {
		out.Roles = append(out.Roles, model.UserRole(r))
	}
	return out
}
