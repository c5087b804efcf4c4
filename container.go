package stringify

// Sequence is an ordered list of values. Absent elements are holes; they
// keep their slot and encode as null.
//
// A Sequence is a reference type: the same *Sequence reachable from two
// places is the same container for cycle detection.
type Sequence struct {
	elems []Value
}

// NewSequence returns a sequence of n holes.
func NewSequence(n int) *Sequence {
	return &Sequence{elems: make([]Value, n)}
}

func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// At returns the element at i, or an absent value when i is out of range.
func (s *Sequence) At(i int) Value {
	if i < 0 || i >= s.Len() {
		return Absent()
	}
	return s.elems[i]
}

// Set stores v at index i, growing the sequence with holes if needed.
// Negative indexes are ignored.
func (s *Sequence) Set(i int, v Value) {
	if i < 0 {
		return
	}
	for len(s.elems) <= i {
		s.elems = append(s.elems, Value{})
	}
	s.elems[i] = v
}

func (s *Sequence) Append(vals ...Value) {
	s.elems = append(s.elems, vals...)
}

// Values returns a copy of the elements.
func (s *Sequence) Values() []Value {
	if s == nil {
		return nil
	}
	out := make([]Value, len(s.elems))
	copy(out, s.elems)
	return out
}

// Mapping is an ordered set of unique string keys with values. Keys are
// enumerated in insertion order.
//
// Like [Sequence], a Mapping is a reference type.
type Mapping struct {
	keys []string
	vals map[string]Value
}

func NewMapping() *Mapping {
	return &Mapping{vals: map[string]Value{}}
}

func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Set stores v under key. Setting an existing key replaces its value but
// keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if m.vals == nil {
		m.vals = map[string]Value{}
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
