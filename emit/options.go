package emit

// JSONOptions configures [EncodeJSON].
type JSONOptions struct {
	// SortKeys requests alphabetically sorted object keys. When false, keys
	// are emitted in the originating [go.confplan.dev/vplan/value.Dict]'s
	// insertion order.
	SortKeys bool
	// Indent is the number of spaces of indentation per nesting level. Zero
	// produces compact output.
	Indent int
	// IgnorePrivate drops dict keys beginning with "_" at every level.
	IgnorePrivate bool
	// IgnoreNone drops dict entries and list items whose value is the
	// explicit null value.
	IgnoreNone bool
}

// YAMLOptions configures [EncodeYAML].
type YAMLOptions struct {
	// SortKeys requests alphabetically sorted mapping keys. When false, keys
	// are emitted in the originating Dict's insertion order.
	SortKeys bool
	// IgnorePrivate drops dict keys beginning with "_" at every level.
	IgnorePrivate bool
	// IgnoreNone drops dict entries and list items whose value is the
	// explicit null value.
	IgnoreNone bool
}

// StreamSeparator joins successive YAML documents in a stream, per the
// external YAML stream convention.
const StreamSeparator = "---\n"
