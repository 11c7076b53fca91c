package client

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/schemasync/schemasync/generate"
	"github.com/schemasync/schemasync/introspect"
	"github.com/schemasync/schemasync/model"
)

// MemoryClient is a deterministic, in-process fake of Client. It applies
// DEFINE/ALTER/REMOVE statements by classifying each one with a small set of
// prefix regexes — the same style the generated statements themselves are
// built with in reverse — and keeps every entity as the raw statement text
// the database would echo back on introspection. It exists for tests and
// for the CLI's offline demo mode; it never touches a network socket.
type MemoryClient struct {
	mu        sync.Mutex
	connected bool

	tables    map[string]string
	fields    map[string]map[string]string
	indexes   map[string]map[string]string
	events    map[string]map[string]string
	functions map[string]string
	accesses  map[string]string
	analyzers map[string]string
	params    map[string]string
	sequences map[string]string
	users     map[string]string

	records map[string][]map[string]any
	nextID  int
}

// NewMemoryClient returns an empty in-memory database.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		tables:    map[string]string{},
		fields:    map[string]map[string]string{},
		indexes:   map[string]map[string]string{},
		events:    map[string]map[string]string{},
		functions: map[string]string{},
		accesses:  map[string]string{},
		analyzers: map[string]string{},
		params:    map[string]string{},
		sequences: map[string]string{},
		users:     map[string]string{},
		records:   map[string][]map[string]any{},
	}
}

func (m *MemoryClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = true
	return nil
}

func (m *MemoryClient) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *MemoryClient) requireConnected() error {
	if !m.connected {
		return fmt.Errorf("client: not connected")
	}
	return nil
}

// dbState is the mutable portion of MemoryClient's data, cloned before a
// batch is applied so that a failure midway through leaves the live state
// untouched — the closest an in-memory fake gets to a real transaction.
type dbState struct {
	tables    map[string]string
	fields    map[string]map[string]string
	indexes   map[string]map[string]string
	events    map[string]map[string]string
	functions map[string]string
	accesses  map[string]string
	analyzers map[string]string
	params    map[string]string
	sequences map[string]string
	users     map[string]string
}

func (m *MemoryClient) snapshot() *dbState {
	s := &dbState{
		tables:    cloneMap(m.tables),
		fields:    cloneMapOfMap(m.fields),
		indexes:   cloneMapOfMap(m.indexes),
		events:    cloneMapOfMap(m.events),
		functions: cloneMap(m.functions),
		accesses:  cloneMap(m.accesses),
		analyzers: cloneMap(m.analyzers),
		params:    cloneMap(m.params),
		sequences: cloneMap(m.sequences),
		users:     cloneMap(m.users),
	}
	return s
}

func (m *MemoryClient) commit(s *dbState) {
	m.tables = s.tables
	m.fields = s.fields
	m.indexes = s.indexes
	m.events = s.events
	m.functions = s.functions
	m.accesses = s.accesses
	m.analyzers = s.analyzers
	m.params = s.params
	m.sequences = s.sequences
	m.users = s.users
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneMapOfMap(m map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(m))
	for k, v := range m {
		out[k] = cloneMap(v)
	}
	return out
}

// ExecuteQuery classifies and applies each ";"-delimited statement in the
// batch against a private snapshot. If any statement fails to classify or
// apply, nothing in the batch is committed.
func (m *MemoryClient) ExecuteQuery(ctx context.Context, statements string) ([]QueryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return nil, err
	}

	stmts := splitStatements(statements)
	state := m.snapshot()
	results := make([]QueryResult, 0, len(stmts))
	for _, raw := range stmts {
		trimmed := strings.TrimSuffix(strings.TrimSpace(raw), ";")
		trimmed = strings.TrimSpace(stripLeadingLineComments(trimmed))
		if trimmed == "" {
			continue
		}
		if err := applyStatement(state, trimmed); err != nil {
			return nil, fmt.Errorf("client: statement %q: %w", trimmed, err)
		}
		results = append(results, QueryResult{Status: "OK"})
	}
	m.commit(state)
	return results, nil
}

// splitStatements splits a batch of ";"-terminated statements, honoring
// (), [], {} nesting and quoted strings so a semicolon inside a function
// body or string literal never splits the statement in two.
func splitStatements(batch string) []string {
	var stmts []string
	var current strings.Builder
	depth := 0
	var quote rune
	runes := []rune(batch)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if quote != 0 {
			if r == quote && (i == 0 || runes[i-1] != '\\') {
				quote = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			quote = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				stmts = append(stmts, current.String())
				current.Reset()
			}
		}
	}
	if strings.TrimSpace(current.String()) != "" {
		stmts = append(stmts, current.String())
	}
	return stmts
}

// stripLeadingLineComments drops any "--"-prefixed lines at the start of a
// statement, such as the timestamp comment the migration manager prepends to
// an up script before execution.
func stripLeadingLineComments(stmt string) string {
	for {
		trimmed := strings.TrimLeft(stmt, " \t\r\n")
		if !strings.HasPrefix(trimmed, "--") {
			return trimmed
		}
		nl := strings.IndexByte(trimmed, '\n')
		if nl < 0 {
			return ""
		}
		stmt = trimmed[nl+1:]
	}
}

var (
	defineTableRe       = regexp.MustCompile(`(?is)^DEFINE\s+TABLE\s+(?:OVERWRITE\s+)?(?:IF\s+NOT\s+EXISTS\s+)?(\S+)`)
	alterTableRenameRe  = regexp.MustCompile(`(?is)^ALTER\s+TABLE\s+(\S+)\s+RENAME\s+TO\s+(\S+)`)
	removeTableRe       = regexp.MustCompile(`(?is)^REMOVE\s+TABLE\s+(\S+)`)

	defineFieldRe        = regexp.MustCompile(`(?is)^DEFINE\s+FIELD\s+(?:OVERWRITE\s+)?(?:IF\s+NOT\s+EXISTS\s+)?(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)
	alterFieldRenameRe   = regexp.MustCompile(`(?is)^ALTER\s+FIELD\s+(\S+)\s+RENAME\s+TO\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)
	alterFieldPropertyRe = regexp.MustCompile(`(?is)^ALTER\s+FIELD\s+(\S+)\s+(TYPE|DEFAULT|VALUE|ASSERT|READONLY|COMMENT)\s+(.*)\s+ON\s+(?:TABLE\s+)?(\S+)$`)
	removeFieldRe        = regexp.MustCompile(`(?is)^REMOVE\s+FIELD\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)

	defineIndexRe      = regexp.MustCompile(`(?is)^DEFINE\s+INDEX\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)
	alterIndexRenameRe = regexp.MustCompile(`(?is)^ALTER\s+INDEX\s+(\S+)\s+RENAME\s+TO\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)
	removeIndexRe      = regexp.MustCompile(`(?is)^REMOVE\s+INDEX\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)

	defineEventRe = regexp.MustCompile(`(?is)^DEFINE\s+EVENT\s+(?:OVERWRITE\s+)?(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)
	removeEventRe = regexp.MustCompile(`(?is)^REMOVE\s+EVENT\s+(\S+)\s+ON\s+(?:TABLE\s+)?(\S+)`)

	defineFunctionRe      = regexp.MustCompile(`(?is)^DEFINE\s+FUNCTION\s+(?:OVERWRITE\s+)?fn::(\S+?)\s*\(`)
	removeFunctionRe      = regexp.MustCompile(`(?is)^REMOVE\s+FUNCTION\s+fn::(\S+)`)
	alterFunctionRenameRe = regexp.MustCompile(`(?is)^ALTER\s+FUNCTION\s+fn::(\S+)\s+RENAME\s+TO\s+fn::(\S+)`)

	defineAccessRe      = regexp.MustCompile(`(?is)^DEFINE\s+ACCESS\s+(?:OVERWRITE\s+)?(\S+)\s+ON\s+DATABASE`)
	removeAccessRe      = regexp.MustCompile(`(?is)^REMOVE\s+ACCESS\s+(\S+)\s+ON\s+DATABASE`)
	alterAccessRenameRe = regexp.MustCompile(`(?is)^ALTER\s+ACCESS\s+(\S+)\s+RENAME\s+TO\s+(\S+)`)

	defineAnalyzerRe      = regexp.MustCompile(`(?is)^DEFINE\s+ANALYZER\s+(?:OVERWRITE\s+)?(\S+)`)
	removeAnalyzerRe      = regexp.MustCompile(`(?is)^REMOVE\s+ANALYZER\s+(\S+)`)
	alterAnalyzerRenameRe = regexp.MustCompile(`(?is)^ALTER\s+ANALYZER\s+(\S+)\s+RENAME\s+TO\s+(\S+)`)

	defineParamRe = regexp.MustCompile(`(?is)^DEFINE\s+PARAM\s+(\$?\S+)`)
	alterParamRe  = regexp.MustCompile(`(?is)^ALTER\s+PARAM\s+(\$?\S+)\s+VALUE\s+(.*)$`)
	removeParamRe = regexp.MustCompile(`(?is)^REMOVE\s+PARAM\s+(\$?\S+)`)

	defineSequenceRe = regexp.MustCompile(`(?is)^DEFINE\s+SEQUENCE\s+(\S+)`)
	removeSequenceRe = regexp.MustCompile(`(?is)^REMOVE\s+SEQUENCE\s+(\S+)`)

	defineUserRe = regexp.MustCompile(`(?is)^DEFINE\s+USER\s+(?:OVERWRITE\s+)?(\S+)\s+ON\s+(\S+)`)
	removeUserRe = regexp.MustCompile(`(?is)^REMOVE\s+USER\s+(\S+)\s+ON\s+(\S+)`)
)

func applyStatement(st *dbState, stmt string) error {
	upper := strings.ToUpper(stmt)
	switch {
	case strings.HasPrefix(upper, "DEFINE TABLE"):
		m := defineTableRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE TABLE")
		}
		st.tables[m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "ALTER TABLE"):
		m := alterTableRenameRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER TABLE")
		}
		return renameTable(st, m[1], m[2])

	case strings.HasPrefix(upper, "REMOVE TABLE"):
		m := removeTableRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE TABLE")
		}
		delete(st.tables, m[1])
		delete(st.fields, m[1])
		delete(st.indexes, m[1])
		delete(st.events, m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE FIELD"):
		m := defineFieldRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE FIELD")
		}
		putNested(st.fields, m[2], m[1], stmt)
		return nil

	case strings.HasPrefix(upper, "ALTER FIELD"):
		if m := alterFieldRenameRe.FindStringSubmatch(stmt); m != nil {
			return renameField(st, m[3], m[1], m[2])
		}
		if m := alterFieldPropertyRe.FindStringSubmatch(stmt); m != nil {
			return alterFieldProperty(st, m[4], m[1], m[2], strings.TrimSpace(m[3]))
		}
		return fmt.Errorf("unrecognized ALTER FIELD")

	case strings.HasPrefix(upper, "REMOVE FIELD"):
		m := removeFieldRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE FIELD")
		}
		deleteNested(st.fields, m[2], m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE INDEX"):
		m := defineIndexRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE INDEX")
		}
		putNested(st.indexes, m[2], m[1], stmt)
		return nil

	case strings.HasPrefix(upper, "ALTER INDEX"):
		m := alterIndexRenameRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER INDEX")
		}
		return renameIndex(st, m[3], m[1], m[2])

	case strings.HasPrefix(upper, "REMOVE INDEX"):
		m := removeIndexRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE INDEX")
		}
		deleteNested(st.indexes, m[2], m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE EVENT"):
		m := defineEventRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE EVENT")
		}
		putNested(st.events, m[2], m[1], stmt)
		return nil

	case strings.HasPrefix(upper, "REMOVE EVENT"):
		m := removeEventRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE EVENT")
		}
		deleteNested(st.events, m[2], m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE FUNCTION"):
		m := defineFunctionRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE FUNCTION")
		}
		st.functions["fn::"+m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "ALTER FUNCTION"):
		m := alterFunctionRenameRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER FUNCTION")
		}
		return renameFunction(st, "fn::"+m[1], "fn::"+m[2])

	case strings.HasPrefix(upper, "REMOVE FUNCTION"):
		m := removeFunctionRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE FUNCTION")
		}
		delete(st.functions, "fn::"+m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE ACCESS"):
		m := defineAccessRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE ACCESS")
		}
		st.accesses[m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "ALTER ACCESS"):
		m := alterAccessRenameRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER ACCESS")
		}
		return renameEntity(st.accesses, m[1], m[2], `(?is)^(DEFINE\s+ACCESS\s+(?:OVERWRITE\s+)?)(\S+)`)

	case strings.HasPrefix(upper, "REMOVE ACCESS"):
		m := removeAccessRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE ACCESS")
		}
		delete(st.accesses, m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE ANALYZER"):
		m := defineAnalyzerRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE ANALYZER")
		}
		st.analyzers[m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "ALTER ANALYZER"):
		m := alterAnalyzerRenameRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER ANALYZER")
		}
		return renameEntity(st.analyzers, m[1], m[2], `(?is)^(DEFINE\s+ANALYZER\s+(?:OVERWRITE\s+)?)(\S+)`)

	case strings.HasPrefix(upper, "REMOVE ANALYZER"):
		m := removeAnalyzerRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE ANALYZER")
		}
		delete(st.analyzers, m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE PARAM"):
		m := defineParamRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE PARAM")
		}
		st.params[strings.TrimPrefix(m[1], "$")] = stmt
		return nil

	case strings.HasPrefix(upper, "ALTER PARAM"):
		m := alterParamRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized ALTER PARAM")
		}
		name := strings.TrimPrefix(m[1], "$")
		st.params[name] = generate.Param(model.Param{Name: name, Value: strings.TrimSpace(m[2])})
		return nil

	case strings.HasPrefix(upper, "REMOVE PARAM"):
		m := removeParamRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE PARAM")
		}
		delete(st.params, strings.TrimPrefix(m[1], "$"))
		return nil

	case strings.HasPrefix(upper, "DEFINE SEQUENCE"):
		m := defineSequenceRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE SEQUENCE")
		}
		st.sequences[m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "REMOVE SEQUENCE"):
		m := removeSequenceRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE SEQUENCE")
		}
		delete(st.sequences, m[1])
		return nil

	case strings.HasPrefix(upper, "DEFINE USER"):
		m := defineUserRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized DEFINE USER")
		}
		st.users[m[1]] = stmt
		return nil

	case strings.HasPrefix(upper, "REMOVE USER"):
		m := removeUserRe.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("unrecognized REMOVE USER")
		}
		delete(st.users, m[1])
		return nil
	}
	return fmt.Errorf("unrecognized statement")
}

func putNested(m map[string]map[string]string, outer, inner, value string) {
	if m[outer] == nil {
		m[outer] = map[string]string{}
	}
	m[outer][inner] = value
}

func deleteNested(m map[string]map[string]string, outer, inner string) {
	if inner2 := m[outer]; inner2 != nil {
		delete(inner2, inner)
	}
}

// renameToken rewrites the identifier immediately following the given
// leading-keyword pattern. It's the textual equivalent of reparsing,
// mutating and re-serializing a statement, without needing a full parse.
func renameToken(stmt, pattern, newName string) string {
	re := regexp.MustCompile(pattern)
	return re.ReplaceAllString(stmt, "${1}"+newName)
}

func renameTable(st *dbState, oldName, newName string) error {
	stmt, ok := st.tables[oldName]
	if !ok {
		return fmt.Errorf("table %q does not exist", oldName)
	}
	delete(st.tables, oldName)
	st.tables[newName] = renameToken(stmt, `(?is)^(DEFINE\s+TABLE\s+(?:OVERWRITE\s+)?)(\S+)`, newName)
	if fields, ok := st.fields[oldName]; ok {
		delete(st.fields, oldName)
		st.fields[newName] = fields
	}
	if indexes, ok := st.indexes[oldName]; ok {
		delete(st.indexes, oldName)
		st.indexes[newName] = indexes
	}
	if events, ok := st.events[oldName]; ok {
		delete(st.events, oldName)
		st.events[newName] = events
	}
	return nil
}

func renameField(st *dbState, table, oldName, newName string) error {
	fields := st.fields[table]
	stmt, ok := fields[oldName]
	if !ok {
		return fmt.Errorf("field %s.%s does not exist", table, oldName)
	}
	delete(fields, oldName)
	fields[newName] = renameToken(stmt, `(?is)^(DEFINE\s+FIELD\s+(?:OVERWRITE\s+)?(?:IF\s+NOT\s+EXISTS\s+)?)(\S+)`, newName)
	return nil
}

func alterFieldProperty(st *dbState, table, name, property, value string) error {
	fields := st.fields[table]
	stmt, ok := fields[name]
	if !ok {
		return fmt.Errorf("field %s.%s does not exist", table, name)
	}
	_, field, err := introspect.ParseField(stmt)
	if err != nil {
		return fmt.Errorf("reparsing stored field before alter: %w", err)
	}
	field.Name = name
	switch generate.FieldProperty(strings.ToUpper(property)) {
	case generate.PropertyType:
		field.Type = value
	case generate.PropertyDefault:
		field.Default = value
	case generate.PropertyValue:
		field.Value = value
	case generate.PropertyAssert:
		field.Assert = value
	case generate.PropertyReadonly:
		field.Readonly = value == "true"
	case generate.PropertyComment:
		field.Comment = strings.Trim(value, "'\"")
	default:
		return fmt.Errorf("unsupported field property %q", property)
	}
	fields[name] = generate.Field(table, field)
	return nil
}

func renameIndex(st *dbState, table, oldName, newName string) error {
	indexes := st.indexes[table]
	stmt, ok := indexes[oldName]
	if !ok {
		return fmt.Errorf("index %s.%s does not exist", table, oldName)
	}
	delete(indexes, oldName)
	indexes[newName] = renameToken(stmt, `(?is)^(DEFINE\s+INDEX\s+)(\S+)`, newName)
	return nil
}

func renameFunction(st *dbState, oldName, newName string) error {
	stmt, ok := st.functions[oldName]
	if !ok {
		return fmt.Errorf("function %s does not exist", oldName)
	}
	delete(st.functions, oldName)
	bare := strings.TrimPrefix(newName, "fn::")
	st.functions[newName] = renameToken(stmt, `(?is)^(DEFINE\s+FUNCTION\s+(?:OVERWRITE\s+)?fn::)(\S+?)(\s*\()`, bare+"$3")
	return nil
}

func renameEntity(m map[string]string, oldName, newName, pattern string) error {
	stmt, ok := m[oldName]
	if !ok {
		return fmt.Errorf("entity %q does not exist", oldName)
	}
	delete(m, oldName)
	m[newName] = renameToken(stmt, pattern, newName)
	return nil
}

func (m *MemoryClient) Select(ctx context.Context, table string) ([]map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return nil, err
	}
	rows := m.records[table]
	out := make([]map[string]any, len(rows))
	copy(out, rows)
	return out, nil
}

func (m *MemoryClient) Create(ctx context.Context, table string, record map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return nil, err
	}
	m.nextID++
	stored := make(map[string]any, len(record)+1)
	for k, v := range record {
		stored[k] = v
	}
	if _, ok := stored["id"]; !ok {
		stored["id"] = fmt.Sprintf("%s:%s", table, strconv.Itoa(m.nextID))
	}
	m.records[table] = append(m.records[table], stored)
	return stored, nil
}

func (m *MemoryClient) Delete(ctx context.Context, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return err
	}
	table := recordID
	if i := strings.IndexByte(recordID, ':'); i >= 0 {
		table = recordID[:i]
	}
	rows := m.records[table]
	kept := rows[:0]
	for _, r := range rows {
		if id, _ := r["id"].(string); id != recordID {
			kept = append(kept, r)
		}
	}
	m.records[table] = kept
	return nil
}

func (m *MemoryClient) InfoForDB(ctx context.Context) (model.InfoForDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return model.InfoForDB{}, err
	}
	return model.InfoForDB{
		Tables:    cloneMap(m.tables),
		Functions: cloneMap(m.functions),
		Accesses:  cloneMap(m.accesses),
		Analyzers: cloneMap(m.analyzers),
		Params:    cloneMap(m.params),
		Sequences: cloneMap(m.sequences),
		Users:     cloneMap(m.users),
	}, nil
}

func (m *MemoryClient) InfoForTable(ctx context.Context, table string) (model.InfoForTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.requireConnected(); err != nil {
		return model.InfoForTable{}, err
	}
	return model.InfoForTable{
		Fields:  cloneMap(m.fields[table]),
		Indexes: cloneMap(m.indexes[table]),
		Events:  cloneMap(m.events[table]),
	}, nil
}
