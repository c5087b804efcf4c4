package stringify

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"go.uber.org/zap"
)

// Stringify encodes v as JSON text.
//
// ok is false when v itself produces no output: it is absent, callable or
// symbolic and no replacer substitutes it. The only error is
// [ErrCircularStructure]; when it is returned, text is empty.
func Stringify(v Value, cfg *Config) (text string, ok bool, err error) {
	if cfg == nil {
		cfg = &Config{}
	}
	s := newSerializer(cfg)

	var owner Value
	if s.transform != nil {
		owner = Object(Entry{Key: "", Value: v})
	}
	text, ok, err = s.encode("", v, owner)
	if err != nil {
		return "", false, err
	}
	return text, ok, nil
}

// serializer holds the state of one Stringify call.
type serializer struct {
	transform TransformFunc
	allow     map[string]struct{}
	escaping  Escaping
	gap       string

	// indent is the current indentation, always a whole number of gaps.
	indent string

	// stack is the chain of containers being encoded, outermost first.
	stack []frame
}

type frame struct {
	container any // *Sequence or *Mapping
	key       string
}

func newSerializer(cfg *Config) *serializer {
	s := &serializer{
		escaping: cfg.Escaping,
		gap:      cfg.Indent.gap,
	}
	switch r := cfg.Replacer.(type) {
	case TransformFunc:
		s.transform = r
	case KeyAllowlist:
		s.allow = make(map[string]struct{}, len(r))
		for _, k := range r {
			s.allow[k] = struct{}{}
		}
	}
	return s
}

func (s *serializer) encode(key string, v Value, owner Value) (string, bool, error) {
	if s.transform != nil {
		v = s.transform(owner, key, v)
	}

	switch v.kind {
	case KindNull:
		return "null", true, nil
	case KindBool:
		return strconv.FormatBool(v.b), true, nil
	case KindNumber:
		text, err := formatNumber(v.num)
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	case KindString:
		text, err := s.quote(v.str)
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	case KindTemporal:
		if !v.valid {
			return "null", true, nil
		}
		text, err := s.quote(formatTime(v.t))
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	case KindSequence:
		return s.encodeSequence(key, v)
	case KindMapping:
		return s.encodeMapping(key, v)
	case KindAbsent, KindCallable, KindSymbolic:
		return "", false, nil
	}
	return "", false, nil
}

func (s *serializer) encodeSequence(key string, v Value) (string, bool, error) {
	seq := v.seq
	if err := s.enter(seq, key); err != nil {
		return "", false, err
	}
	defer s.leave()

	if len(seq.elems) == 0 {
		return "[]", true, nil
	}

	outer := s.indent
	s.indent += s.gap
	defer func() { s.indent = outer }()

	items := make([]string, 0, len(seq.elems))
	for i, elem := range seq.elems {
		text, ok, err := s.encode(strconv.Itoa(i), elem, v)
		if err != nil {
			return "", false, err
		}
		if !ok {
			text = "null"
		}
		items = append(items, text)
	}
	return s.join('[', items, ']', outer), true, nil
}

func (s *serializer) encodeMapping(key string, v Value) (string, bool, error) {
	m := v.obj
	if err := s.enter(m, key); err != nil {
		return "", false, err
	}
	defer s.leave()

	outer := s.indent
	s.indent += s.gap
	defer func() { s.indent = outer }()

	sep := ":"
	if s.gap != "" {
		sep = ": "
	}

	entries := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		if s.allow != nil {
			if _, ok := s.allow[k]; !ok {
				continue
			}
		}
		text, ok, err := s.encode(k, m.vals[k], v)
		if err != nil {
			return "", false, err
		}
		if !ok {
			continue
		}
		name, err := s.quoteKey(k)
		if err != nil {
			return "", false, err
		}
		entries = append(entries, name+sep+text)
	}
	if len(entries) == 0 {
		return "{}", true, nil
	}
	return s.join('{', entries, '}', outer), true, nil
}

// join lays out the items of a non-empty container. s.indent must already
// hold the indentation of the items.
func (s *serializer) join(opening byte, items []string, closing byte, outer string) string {
	var b strings.Builder
	b.WriteByte(opening)
	if s.gap == "" {
		b.WriteString(strings.Join(items, ","))
	} else {
		b.WriteString("\n" + s.indent)
		b.WriteString(strings.Join(items, ",\n"+s.indent))
		b.WriteString("\n" + outer)
	}
	b.WriteByte(closing)
	return b.String()
}

// enter pushes container onto the visitation stack, failing if it is
// already there.
func (s *serializer) enter(container any, key string) error {
	for _, f := range s.stack {
		if f.container == container {
			err := ErrCircularStructure{path: s.pointer(key)}
			Logger().Debug("circular structure detected",
				zap.String("path", err.path),
				zap.Int("depth", len(s.stack)),
			)
			return err
		}
	}
	s.stack = append(s.stack, frame{container: container, key: key})
	return nil
}

func (s *serializer) leave() {
	s.stack = s.stack[:len(s.stack)-1]
}

// pointer renders the JSON Pointer of key within the innermost container.
func (s *serializer) pointer(key string) string {
	var b strings.Builder
	for _, f := range s.stack[1:] {
		b.WriteByte('/')
		b.WriteString(escapePointer(f.key))
	}
	b.WriteByte('/')
	b.WriteString(escapePointer(key))
	return b.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(key string) string { return pointerEscaper.Replace(key) }

func (s *serializer) quote(str string) (string, error) {
	if s.escaping == EscapeQuotesOnly {
		return `"` + strings.ReplaceAll(str, `"`, `\"`) + `"`, nil
	}
	b, err := json.Marshal(strings.ToValidUTF8(str, "\uFFFD"))
	if err != nil {
		return "", fmt.Errorf("failed to quote string: %w", err)
	}
	return string(b), nil
}

func (s *serializer) quoteKey(key string) (string, error) {
	if s.escaping == EscapeQuotesOnly {
		return `"` + key + `"`, nil
	}
	return s.quote(key)
}

// formatNumber renders f as the shortest decimal that round-trips, in the
// ECMAScript style (1e+21, 1e-7). Non-finite numbers become null.
func formatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null", nil
	}
	if f == 0 {
		// also covers negative zero
		return "0", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to format number: %w", err)
	}
	return string(b), nil
}
