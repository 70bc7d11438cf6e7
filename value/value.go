package value

import "fmt"

// Kind tags the case a [Value] holds.
type Kind uint8

// The complete set of value cases.
const (
	KindUndefined Kind = iota
	KindNone
	KindBool
	KindInt
	KindFloat
	KindStr
	KindUnit
	KindFunc
	KindList
	KindDict
	KindSchema
)

// String returns the short type tag used by [Value.TypeStr] and logging.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNone:
		return "NoneType"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindUnit:
		return "unit"
	case KindFunc:
		return "function"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindSchema:
		return "schema"
	}

	return "unknown"
}

// Func is an opaque callable value. The planner never descends into it; it
// is always elided from planned output.
type Func struct {
	Name string
}

// Unit is a dimensioned number. [Value.Float] degrades it to its numeric
// Magnitude wherever it reaches a JSON/YAML leaf.
type Unit struct {
	Magnitude float64
	Raw       float64
	Denom     string
}

// Value is the tagged variant at the root of the value graph: scalars,
// lists, ordered dicts, and typed schema instances.
//
// The zero Value is [KindUndefined]. Composite cases are held by pointer
// ([List], [Dict], [Schema]) so copying a Value is cheap and multiple
// Values may share substructure; nothing in this module mutates shared
// substructure in place.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	unit   Unit
	fn     *Func
	list   *List
	dict   *Dict
	schema *Schema
}

// Undefined returns the sentinel for an absent/uninitialized value.
func Undefined() Value { return Value{kind: KindUndefined} }

// None returns the explicit null value.
func None() Value { return Value{kind: KindNone} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer scalar.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point scalar.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string scalar.
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// NewUnit returns a dimensioned number.
func NewUnit(magnitude, raw float64, denom string) Value {
	return Value{kind: KindUnit, unit: Unit{Magnitude: magnitude, Raw: raw, Denom: denom}}
}

// NewFunc returns an opaque callable value.
func NewFunc(name string) Value {
	return Value{kind: KindFunc, fn: &Func{Name: name}}
}

// NewList wraps a [List] as a Value.
func NewList(l *List) Value {
	if l == nil {
		l = &List{}
	}

	return Value{kind: KindList, list: l}
}

// NewDict wraps a [Dict] as a Value.
func NewDict(d *Dict) Value {
	if d == nil {
		d = &Dict{}
	}

	return Value{kind: KindDict, dict: d}
}

// NewSchema wraps a [Schema] as a Value.
func NewSchema(s *Schema) Value {
	if s == nil {
		s = &Schema{Config: &Dict{}}
	}

	return Value{kind: KindSchema, schema: s}
}

// Kind returns the case this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the undefined sentinel.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNone reports whether v is the explicit null value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// IsBool reports whether v is a boolean scalar.
func (v Value) IsBool() bool { return v.kind == KindBool }

// IsInt reports whether v is an integer scalar.
func (v Value) IsInt() bool { return v.kind == KindInt }

// IsFloat reports whether v is a floating-point scalar.
func (v Value) IsFloat() bool { return v.kind == KindFloat }

// IsStr reports whether v is a string scalar.
func (v Value) IsStr() bool { return v.kind == KindStr }

// IsUnit reports whether v is a dimensioned number.
func (v Value) IsUnit() bool { return v.kind == KindUnit }

// IsFunc reports whether v is an opaque callable. The planner always elides
// these.
func (v Value) IsFunc() bool { return v.kind == KindFunc }

// IsList reports whether v is an ordered sequence.
func (v Value) IsList() bool { return v.kind == KindList }

// IsDict reports whether v is an ordered dict.
func (v Value) IsDict() bool { return v.kind == KindDict }

// IsSchema reports whether v is a typed schema instance.
func (v Value) IsSchema() bool { return v.kind == KindSchema }

// IsConfig reports whether v is config-shaped: a [Dict] or a [Schema].
func (v Value) IsConfig() bool { return v.kind == KindDict || v.kind == KindSchema }

// IsListOrConfig reports whether v is a list or config-shaped value.
func (v Value) IsListOrConfig() bool { return v.kind == KindList || v.IsConfig() }

// Bool returns the boolean payload; only meaningful when [Value.IsBool].
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; only meaningful when [Value.IsInt].
func (v Value) Int() int64 { return v.i }

// Float returns the float payload for [KindFloat] and [KindUnit] (degraded
// to its magnitude); only meaningful when [Value.IsFloat] or [Value.IsUnit].
func (v Value) Float() float64 {
	if v.kind == KindUnit {
		return v.unit.Magnitude
	}

	return v.f
}

// Str returns the string payload; only meaningful when [Value.IsStr].
func (v Value) Str() string { return v.s }

// Unit returns the dimensioned-number payload; only meaningful when
// [Value.IsUnit].
func (v Value) Unit() Unit { return v.unit }

// Func returns the opaque callable payload; only meaningful when
// [Value.IsFunc].
func (v Value) Func() *Func { return v.fn }

// List returns the backing [List]; only meaningful when [Value.IsList].
// Returns nil otherwise.
func (v Value) List() *List { return v.list }

// Dict returns the backing [Dict]; only meaningful when [Value.IsDict].
// Returns nil otherwise.
func (v Value) Dict() *Dict { return v.dict }

// Schema returns the backing [Schema]; only meaningful when
// [Value.IsSchema]. Returns nil otherwise.
func (v Value) Schema() *Schema { return v.schema }

// TypeStr returns a short type tag such as "int", "str", "list", "dict".
func (v Value) TypeStr() string { return v.kind.String() }

// IsTruthy reports whether v is truthy: false for an empty dict/list/string,
// zero numbers, false bool, none, and undefined; true otherwise.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindUndefined, KindNone:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindUnit:
		return v.unit.Magnitude != 0
	case KindStr:
		return v.s != ""
	case KindList:
		return v.list.Len() > 0
	case KindDict:
		return v.dict.Len() > 0
	case KindSchema:
		return true
	case KindFunc:
		return true
	}

	return true
}

// IsPlannedEmpty reports whether v is a dict that is empty (or not truthy)
// or the undefined sentinel. Used by the planner to prune trailing
// standalone-document slots.
func (v Value) IsPlannedEmpty() bool {
	return (v.kind == KindDict && !v.IsTruthy()) || v.kind == KindUndefined
}

// GoString supports %#v formatting in test failure output.
func (v Value) GoString() string {
	return fmt.Sprintf("value.Value{kind:%s}", v.kind)
}
