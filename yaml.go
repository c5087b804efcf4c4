package stringify

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Local YAML tags for kinds that YAML has no notation for.
const (
	TagFunc        = "!func"
	TagSymbol      = "!symbol"
	TagUndefined   = "!undefined"
	TagInvalidDate = "!invalid-date"
)

// FromYAML converts the first YAML document in data into a Value. An empty
// document converts to an absent value.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return FromYAMLNode(&doc)
}

// FromYAMLNode converts a YAML node tree into a Value, keeping the order of
// mapping keys.
//
// Scalars follow their resolved tag: !!null, !!bool, !!int and !!float
// (including .nan and .inf) become Null, Bool and Number, !!timestamp
// becomes a Temporal, and everything else becomes a String. The local tags
// !func, !symbol, !undefined and !invalid-date produce the kinds of the same
// name. Merge keys (<<) are applied without overriding explicit keys.
//
// An alias converts to the same container as its anchor, so a shared subtree
// is shared in the result too.
func FromYAMLNode(n *yaml.Node) (Value, error) {
	c := &yamlConverter{seen: map[*yaml.Node]Value{}}
	return c.convert(n)
}

type yamlConverter struct {
	seen map[*yaml.Node]Value
}

func (c *yamlConverter) convert(n *yaml.Node) (Value, error) {
	if n == nil {
		return Value{}, nil
	}
	switch n.Kind {
	case 0:
		return Value{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Value{}, nil
		}
		return c.convert(n.Content[0])
	case yaml.AliasNode:
		return c.convert(n.Alias)
	case yaml.MappingNode:
		return c.convertMapping(n)
	case yaml.SequenceNode:
		if v, ok := c.seen[n]; ok {
			return v, nil
		}
		s := NewSequence(len(n.Content))
		v := SequenceOf(s)
		c.seen[n] = v
		for i, child := range n.Content {
			elem, err := c.convert(child)
			if err != nil {
				return Value{}, err
			}
			s.Set(i, elem)
		}
		return v, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	}
	return Value{}, ErrUnsupportedYAMLNode{what: fmt.Sprintf("node kind %d", n.Kind), line: n.Line, column: n.Column}
}

func (c *yamlConverter) convertMapping(n *yaml.Node) (Value, error) {
	if v, ok := c.seen[n]; ok {
		return v, nil
	}
	m := NewMapping()
	v := MappingOf(m)
	c.seen[n] = v

	var merged []*Mapping
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, val := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.AliasNode {
			k = k.Alias
		}
		if k.Kind != yaml.ScalarNode {
			return Value{}, ErrUnsupportedYAMLNode{what: "non-scalar mapping key", line: k.Line, column: k.Column}
		}
		if k.ShortTag() == "!!merge" {
			sources, err := c.mergeSources(val)
			if err != nil {
				return Value{}, err
			}
			merged = append(merged, sources...)
			continue
		}
		elem, err := c.convert(val)
		if err != nil {
			return Value{}, err
		}
		m.Set(k.Value, elem)
	}

	for _, src := range merged {
		for _, key := range src.keys {
			if _, ok := m.vals[key]; !ok {
				m.Set(key, src.vals[key])
			}
		}
	}
	return v, nil
}

// mergeSources returns the mappings named by the value of a merge key: a
// single mapping or a sequence of them.
func (c *yamlConverter) mergeSources(n *yaml.Node) ([]*Mapping, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	var nodes []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		nodes = []*yaml.Node{n}
	case yaml.SequenceNode:
		nodes = n.Content
	default:
		return nil, ErrUnsupportedYAMLNode{what: "merge value", line: n.Line, column: n.Column}
	}

	out := make([]*Mapping, 0, len(nodes))
	for _, node := range nodes {
		v, err := c.convert(node)
		if err != nil {
			return nil, err
		}
		if v.Kind() != KindMapping {
			return nil, ErrUnsupportedYAMLNode{what: "merge value", line: node.Line, column: node.Column}
		}
		out = append(out, v.Mapping())
	}
	return out, nil
}

func scalarValue(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("failed to decode bool at line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("failed to decode number at line %d: %w", n.Line, err)
		}
		return Number(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return Value{}, fmt.Errorf("failed to decode timestamp at line %d: %w", n.Line, err)
		}
		return Time(t), nil
	case TagFunc:
		return Func(n.Value), nil
	case TagSymbol:
		return Symbol(n.Value), nil
	case TagUndefined:
		return Absent(), nil
	case TagInvalidDate:
		return InvalidTime(), nil
	}
	return String(n.Value), nil
}
