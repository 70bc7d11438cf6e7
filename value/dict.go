package value

// MergeOp tags how a key's value should be combined when two config-shaped
// values are folded together by [go.confplan.dev/vplan/value/decode].
// FilterResults in the plan package never reads this field — per the data
// model, the planner treats a Dict as a plain ordered mapping.
type MergeOp uint8

const (
	// MergeOverride replaces any existing value for the key outright.
	MergeOverride MergeOp = iota
	// MergeUnion recursively unions the key's value with any existing one.
	MergeUnion
)

// Dict is an insertion-ordered string-to-[Value] mapping. The zero value is
// an empty, ready-to-use Dict.
type Dict struct {
	keys   []string
	values map[string]Value
	ops    map[string]MergeOp
}

// Len returns the number of keys in d.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}

	return len(d.keys)
}

// Keys returns the dict's keys in insertion order. The returned slice must
// not be modified.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}

	return d.keys
}

// Has reports whether key is present in d.
func (d *Dict) Has(key string) bool {
	if d == nil {
		return false
	}

	_, ok := d.values[key]

	return ok
}

// Get returns the value stored at key and whether it was present.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}

	v, ok := d.values[key]

	return v, ok
}

// MergeOpFor returns the merge operation recorded for key, defaulting to
// [MergeOverride] when none was recorded.
func (d *Dict) MergeOpFor(key string) MergeOp {
	if d == nil || d.ops == nil {
		return MergeOverride
	}

	return d.ops[key]
}

// Upsert inserts or updates key with value v, preserving key's original
// position in insertion order when it already exists. Equivalent to the
// original runtime's dict_update_key_value.
func (d *Dict) Upsert(key string, v Value) {
	d.UpsertOp(key, v, MergeOverride)
}

// UpsertOp is [Dict.Upsert] additionally recording op as the key's merge
// operation. value/decode's multi-document merge and the plan package's
// legacy filter record it; it is read back only through [Dict.MergeOpFor].
func (d *Dict) UpsertOp(key string, v Value, op MergeOp) {
	if d.values == nil {
		d.values = make(map[string]Value)
	}

	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}

	d.values[key] = v

	if op != MergeOverride || d.ops != nil {
		if d.ops == nil {
			d.ops = make(map[string]MergeOp)
		}

		d.ops[key] = op
	}
}

// Delete removes key from d, if present.
func (d *Dict) Delete(key string) {
	if d == nil {
		return
	}

	if _, ok := d.values[key]; !ok {
		return
	}

	delete(d.values, key)
	delete(d.ops, key)

	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)

			break
		}
	}
}

// Range calls fn for each key-value pair in insertion order, stopping early
// if fn returns false.
func (d *Dict) Range(fn func(key string, v Value) bool) {
	if d == nil {
		return
	}

	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			return
		}
	}
}

// List is an ordered sequence of [Value].
type List struct {
	items []Value
}

// Len returns the number of items in l.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

// Items returns the list's items in order. The returned slice must not be
// modified.
func (l *List) Items() []Value {
	if l == nil {
		return nil
	}

	return l.items
}

// Append appends v to l.
func (l *List) Append(v Value) {
	l.items = append(l.items, v)
}

// Index returns the item at position i.
func (l *List) Index(i int) Value { return l.items[i] }
