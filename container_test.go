package stringify_test

import (
	"testing"

	"github.com/dhoelle/stringify"
)

func Test_MappingOrder(t *testing.T) {
	m := stringify.NewMapping()
	m.Set("b", stringify.Int(1))
	m.Set("a", stringify.Int(2))
	m.Set("c", stringify.Int(3))
	m.Set("b", stringify.Int(4))

	if got := m.Keys(); len(got) != 3 || got[0] != "b" || got[1] != "a" || got[2] != "c" {
		t.Fatalf("got keys %v, want [b a c]", got)
	}
	if v, ok := m.Get("b"); !ok || v.Float() != 4 {
		t.Errorf("got b = %v (%v), want 4", v.Float(), ok)
	}

	if !m.Delete("a") {
		t.Errorf("Delete(a) reported a missing key")
	}
	if m.Delete("a") {
		t.Errorf("second Delete(a) reported a present key")
	}
	m.Set("a", stringify.Int(5))

	if got := mustStringify(t, stringify.MappingOf(m), nil); got != `{"b":4,"c":3,"a":5}` {
		t.Errorf("got %s", got)
	}
}

func Test_MappingZeroValue(t *testing.T) {
	var m stringify.Mapping
	m.Set("a", stringify.Bool(true))
	if got := mustStringify(t, stringify.MappingOf(&m), nil); got != `{"a":true}` {
		t.Errorf("got %s", got)
	}

	var nilMapping *stringify.Mapping
	if nilMapping.Len() != 0 || nilMapping.Keys() != nil {
		t.Errorf("nil mapping is not empty")
	}
	if got := mustStringify(t, stringify.MappingOf(nilMapping), nil); got != `null` {
		t.Errorf("got %s for nil mapping, want null", got)
	}
}

func Test_SequenceSet(t *testing.T) {
	s := stringify.NewSequence(0)
	s.Set(2, stringify.String("c"))
	s.Set(-1, stringify.String("ignored"))
	s.Append(stringify.String("d"))

	if s.Len() != 4 {
		t.Fatalf("got length %d, want 4", s.Len())
	}
	if !s.At(0).IsAbsent() || !s.At(10).IsAbsent() {
		t.Errorf("holes and out of range indexes should be absent")
	}
	if got := mustStringify(t, stringify.SequenceOf(s), nil); got != `[null,null,"c","d"]` {
		t.Errorf("got %s", got)
	}

	vals := s.Values()
	vals[0] = stringify.Int(1)
	if !s.At(0).IsAbsent() {
		t.Errorf("Values returned the backing slice")
	}
}

func Test_Indent(t *testing.T) {
	tests := []struct {
		in      stringify.Indent
		want    string
		compact bool
	}{
		{in: stringify.Indent{}, want: "", compact: true},
		{in: stringify.Spaces(-1), want: "", compact: true},
		{in: stringify.Spaces(3), want: "   "},
		{in: stringify.Spaces(11), want: "          "},
		{in: stringify.Gap(""), want: "", compact: true},
		{in: stringify.Gap("--"), want: "--"},
		{in: stringify.Gap("ééééééééééé"), want: "éééééééééé"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("got gap %q, want %q", got, tt.want)
		}
		if got := tt.in.IsCompact(); got != tt.compact {
			t.Errorf("gap %q: got compact %v, want %v", tt.want, got, tt.compact)
		}
	}
}
