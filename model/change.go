package model

// Kind identifies which collection of the schema an entity belongs to.
type Kind string

const (
	KindTable    Kind = "table"
	KindField    Kind = "field"
	KindIndex    Kind = "index"
	KindEvent    Kind = "event"
	KindFunction Kind = "function"
	KindAnalyzer Kind = "analyzer"
	KindScope    Kind = "scope"
	KindParam    Kind = "param"
	KindSequence Kind = "sequence"
	KindUser     Kind = "user"
)

// Operation is the kind of transition a Change represents.
type Operation string

const (
	OpCreate   Operation = "create"
	OpModify   Operation = "modify"
	OpRemove   Operation = "remove"
	OpRename   Operation = "rename"
	OpRecreate Operation = "recreate"
)

// Change is a single structured transition between the current and desired
// schema for one entity. It carries enough context in Details to synthesize
// both the forward and the rollback statement for that entity; the up/down
// scripts emitted by the diff engine are built by walking a []Change.
type Change struct {
	Kind      Kind
	Table     string // parent table name; empty for table/function/analyzer/scope/param/sequence/user kinds
	Entity    string // entity name (post-change name for renames)
	Operation Operation
	Details   any
}

// RenameDetails is carried by OpRename changes.
type RenameDetails struct {
	OldName string
	NewName string
}

// FieldModifyDetails is carried by OpModify changes of kind Field.
type FieldModifyDetails struct {
	Granular   bool
	Properties []string
	Old        Field
	New        Field
}

// IndexRecreateDetails is carried by OpModify changes of kind Index (indexes
// are never altered in place, only dropped and recreated).
type IndexRecreateDetails struct {
	Old Index
	New Index
}

// EventModifyDetails is carried by OpModify changes of kind Event.
type EventModifyDetails struct {
	Old Event
	New Event
}

// FunctionModifyDetails is carried by OpModify changes of kind Function.
type FunctionModifyDetails struct {
	Old Function
	New Function
}

// AnalyzerModifyDetails is carried by OpModify changes of kind Analyzer.
type AnalyzerModifyDetails struct {
	Old Analyzer
	New Analyzer
}

// ScopeModifyDetails is carried by OpModify changes of kind Scope.
type ScopeModifyDetails struct {
	Old Scope
	New Scope
}

// ParamModifyDetails is carried by OpModify changes of kind Param.
type ParamModifyDetails struct {
	OldValue string
	NewValue string
}

// SequenceRecreateDetails is carried by OpRecreate changes of kind Sequence.
type SequenceRecreateDetails struct {
	Old Sequence
	New Sequence
}

// UserModifyDetails is carried by OpModify changes of kind User.
type UserModifyDetails struct {
	Old User
	New User
}

// TableRecreateDetails is carried by OpRecreate changes of kind Table,
// emitted when a relation's endpoints change.
type TableRecreateDetails struct {
	Old Table
	New Table
}

// TableSnapshotDetails is carried by OpCreate/OpRemove changes of kind
// Table; it holds the full entity (and, for OpRemove, its subcomponents)
// so that rollback can reconstruct it without re-introspecting.
type TableSnapshotDetails struct {
	Table Table
}
