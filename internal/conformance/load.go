package conformance

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/dhoelle/stringify"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

// caseSpec is the YAML form of a Case.
type caseSpec struct {
	Description string    `yaml:"description"`
	Value       yaml.Node `yaml:"value"`
	Keys        []string  `yaml:"keys"`
	Transform   string    `yaml:"transform"`
	Space       *int      `yaml:"space"`
	Gap         *string   `yaml:"gap"`
	Escaping    string    `yaml:"escaping"`
	Want        *string   `yaml:"want"`
	Error       bool      `yaml:"error"`
}

// Load reads a YAML list of cases. Each case has a description, a value in
// YAML (see [stringify.FromYAMLNode] for the supported tags), optional
// replacer and indentation settings, and either the expected text in want,
// error: true for a circular structure, or neither to expect no output.
//
//	- description: Replacer array (include only certain keys)
//	  value: {name: Alice, age: 25, city: Wonderland}
//	  keys: [name, city]
//	  want: '{"name":"Alice","city":"Wonderland"}'
//
// A replacer is either keys (a key allowlist) or transform, which names one
// of omit-numbers, upper-strings or drop:<key>. Indentation is space (a
// number of spaces) or gap (a literal string).
func Load(data []byte) ([]Case, error) {
	var specs []caseSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse cases: %w", err)
	}

	cases := make([]Case, 0, len(specs))
	for i, cs := range specs {
		c, err := cs.build()
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i+1, cs.Description, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (s caseSpec) build() (Case, error) {
	v, err := stringify.FromYAMLNode(&s.Value)
	if err != nil {
		return Case{}, fmt.Errorf("failed to convert value: %w", err)
	}
	c := Case{
		Description: s.Description,
		Value:       v,
		WantError:   s.Error,
	}
	if s.Want != nil {
		c.Want = *s.Want
	} else if !s.Error {
		c.WantAbsent = true
	}

	switch {
	case s.Keys != nil && s.Transform != "":
		return Case{}, fmt.Errorf("keys and transform are mutually exclusive")
	case s.Keys != nil:
		c.Config.Replacer = stringify.KeyAllowlist(s.Keys)
	case s.Transform != "":
		fn, err := TransformByName(s.Transform)
		if err != nil {
			return Case{}, err
		}
		c.Config.Replacer = fn
	}

	switch {
	case s.Space != nil && s.Gap != nil:
		return Case{}, fmt.Errorf("space and gap are mutually exclusive")
	case s.Space != nil:
		c.Config.Indent = stringify.Spaces(*s.Space)
	case s.Gap != nil:
		c.Config.Indent = stringify.Gap(*s.Gap)
	}

	switch s.Escaping {
	case "", "standard":
		c.Config.Escaping = stringify.EscapeStandard
	case "quotes":
		c.Config.Escaping = stringify.EscapeQuotesOnly
	default:
		return Case{}, fmt.Errorf("unknown escaping %q", s.Escaping)
	}
	return c, nil
}

// TransformByName returns one of the named transforms:
//
//   - omit-numbers drops every number
//   - upper-strings upper-cases every string
//   - drop:<key> drops entries named key
func TransformByName(name string) (stringify.TransformFunc, error) {
	switch name {
	case "omit-numbers":
		return func(_ stringify.Value, _ string, v stringify.Value) stringify.Value {
			if v.Kind() == stringify.KindNumber {
				return stringify.Absent()
			}
			return v
		}, nil
	case "upper-strings":
		return func(_ stringify.Value, _ string, v stringify.Value) stringify.Value {
			if v.Kind() == stringify.KindString {
				return stringify.String(strings.ToUpper(v.Text()))
			}
			return v
		}, nil
	}
	if key, ok := strings.CutPrefix(name, "drop:"); ok && key != "" {
		return func(_ stringify.Value, k string, v stringify.Value) stringify.Value {
			if k == key {
				return stringify.Absent()
			}
			return v
		}, nil
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}

// Default returns the built-in suite: the embedded YAML cases followed by
// cases that YAML cannot express.
func Default() ([]Case, error) {
	cases, err := Load(defaultCases)
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in cases: %w", err)
	}
	return append(cases, builtCases()...), nil
}

func builtCases() []Case {
	self := stringify.NewMapping()
	self.Set("self", stringify.MappingOf(self))

	indirect := stringify.NewMapping()
	indirect.Set("children", stringify.Array(stringify.Object(
		stringify.Entry{Key: "parent", Value: stringify.MappingOf(indirect)},
	)))

	return []Case{
		{
			Description: "Cyclic reference",
			Value:       stringify.MappingOf(self),
			WantError:   true,
		},
		{
			Description: "Indirect cyclic reference through an array",
			Value:       stringify.MappingOf(indirect),
			Config:      stringify.Config{Indent: stringify.Spaces(2)},
			WantError:   true,
		},
		{
			Description: "Replacer function receives the owning object",
			Value: stringify.Object(
				stringify.Entry{Key: "a", Value: stringify.Int(1)},
				stringify.Entry{Key: "b", Value: stringify.Int(2)},
			),
			Config: stringify.Config{
				Replacer: stringify.TransformFunc(func(owner stringify.Value, key string, v stringify.Value) stringify.Value {
					if key == "b" {
						return stringify.Int(owner.Mapping().Len())
					}
					return v
				}),
			},
			Want: `{"a":1,"b":2}`,
		},
	}
}
