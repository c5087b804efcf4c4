package stringify

import (
	"math"
	"time"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindTemporal
	KindSequence
	KindMapping
	KindCallable
	KindSymbolic
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTemporal:
		return "temporal"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindCallable:
		return "callable"
	case KindSymbolic:
		return "symbolic"
	}
	return "unknown"
}

// maxTimeMillis bounds the instants a Temporal can hold, in milliseconds on
// either side of the Unix epoch. Anything outside is an invalid date.
const maxTimeMillis = 8.64e15

// Value is a dynamically-typed value that can be encoded by [Stringify].
//
// The zero Value is absent: it produces no output on its own, is omitted as
// a mapping entry, and encodes as null inside a sequence.
type Value struct {
	kind  Kind
	b     bool
	num   float64
	str   string
	t     time.Time
	valid bool
	seq   *Sequence
	obj   *Mapping
	fn    any
}

// Absent returns the value that produces no output.
func Absent() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. NaN and the infinities are accepted and
// encode as null.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int is shorthand for Number(float64(i)).
func Int(i int) Value { return Number(float64(i)) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Time returns a temporal value. Instants further than 8.64e15 milliseconds
// from the Unix epoch are invalid and encode as null.
func Time(t time.Time) Value {
	return Value{kind: KindTemporal, t: t, valid: timeInRange(t)}
}

// InvalidTime returns a temporal value in the invalid state.
func InvalidTime() Value { return Value{kind: KindTemporal} }

// Func returns a callable value wrapping fn. Callables never produce output.
func Func(fn any) Value { return Value{kind: KindCallable, fn: fn} }

// Symbol returns a symbolic value. Symbols never produce output.
func Symbol(desc string) Value { return Value{kind: KindSymbolic, str: desc} }

// SequenceOf wraps s. A nil s yields Null.
func SequenceOf(s *Sequence) Value {
	if s == nil {
		return Null()
	}
	return Value{kind: KindSequence, seq: s}
}

// MappingOf wraps m. A nil m yields Null.
func MappingOf(m *Mapping) Value {
	if m == nil {
		return Null()
	}
	return Value{kind: KindMapping, obj: m}
}

// Array builds a new sequence holding vals.
func Array(vals ...Value) Value {
	s := &Sequence{}
	s.Append(vals...)
	return SequenceOf(s)
}

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Value
}

// Object builds a new mapping from entries, in order. A repeated key keeps
// its first position and its last value.
func Object(entries ...Entry) Value {
	m := NewMapping()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return MappingOf(m)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Boolean returns the payload of a Bool value.
func (v Value) Boolean() bool { return v.b }

// Float returns the payload of a Number value.
func (v Value) Float() float64 { return v.num }

// Text returns the payload of a String value, or the description of a
// Symbol value.
func (v Value) Text() string { return v.str }

// Instant returns the payload of a Temporal value and whether it is valid.
func (v Value) Instant() (time.Time, bool) { return v.t, v.valid }

// Sequence returns the container of a Sequence value, or nil.
func (v Value) Sequence() *Sequence { return v.seq }

// Mapping returns the container of a Mapping value, or nil.
func (v Value) Mapping() *Mapping { return v.obj }

// Callable returns the payload of a Callable value.
func (v Value) Callable() any { return v.fn }

// IsFinite reports whether v is a Number that is neither NaN nor infinite.
func (v Value) IsFinite() bool {
	return v.kind == KindNumber && !math.IsNaN(v.num) && !math.IsInf(v.num, 0)
}

func timeInRange(t time.Time) bool {
	const maxSeconds = maxTimeMillis / 1000
	sec := t.Unix()
	switch {
	case sec > maxSeconds || sec < -maxSeconds:
		return false
	case sec == maxSeconds:
		return t.Nanosecond() < int(time.Millisecond)
	}
	return true
}
