package stringify_test

import (
	"errors"
	"testing"

	"github.com/dhoelle/stringify"
	"gopkg.in/yaml.v3"
)

func Test_FromYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "key order is kept",
			in:   "zeta: 1\nalpha: two\nmid: [true, null]\n",
			want: `{"zeta":1,"alpha":"two","mid":[true,null]}`,
		},
		{
			name: "numbers",
			in:   "[0x1F, 1.5, -0.0, .nan, .inf, -.inf]",
			want: `[31,1.5,0,null,null,null]`,
		},
		{
			name: "quoted scalars stay strings",
			in:   `["1", 'true', "null"]`,
			want: `["1","true","null"]`,
		},
		{
			name: "timestamps",
			in:   "today: !!timestamp 2022-09-12T10:00:00Z\n",
			want: `{"today":"2022-09-12T10:00:00.000Z"}`,
		},
		{
			name: "local tags",
			in:   "f: !func test\ns: !symbol id\nu: !undefined\nd: !invalid-date\nlist:\n  - !func a\n  - !undefined\n",
			want: `{"d":null,"list":[null,null]}`,
		},
		{
			name: "aliases",
			in:   "a: &shared [1, 2]\nb: *shared\n",
			want: `{"a":[1,2],"b":[1,2]}`,
		},
		{
			name: "merge keys do not override explicit keys",
			in:   "base: &base {x: 1, y: 2}\nderived:\n  y: 3\n  <<: *base\n",
			want: `{"base":{"x":1,"y":2},"derived":{"y":3,"x":1}}`,
		},
		{
			name: "empty document",
			in:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := stringify.FromYAML([]byte(tt.in))
			if err != nil {
				t.Fatalf("error converting: %v", err)
			}
			text, ok, err := stringify.Stringify(v, nil)
			if err != nil {
				t.Fatalf("error stringifying: %v", err)
			}
			if tt.want == "" {
				if ok {
					t.Errorf("got %s, want no output", text)
				}
				return
			}
			if text != tt.want {
				t.Errorf("got %s, want %s", text, tt.want)
			}
		})
	}
}

func Test_FromYAMLSharesAliasedContainers(t *testing.T) {
	v, err := stringify.FromYAML([]byte("a: &m {k: v}\nb: *m\n"))
	if err != nil {
		t.Fatalf("error converting: %v", err)
	}
	a, _ := v.Mapping().Get("a")
	b, _ := v.Mapping().Get("b")
	if a.Mapping() == nil || a.Mapping() != b.Mapping() {
		t.Errorf("alias did not convert to the anchored mapping")
	}
}

func Test_FromYAMLNodeCycle(t *testing.T) {
	// Build a mapping whose value aliases the mapping itself
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "self"},
		{Kind: yaml.AliasNode, Alias: m},
	}

	v, err := stringify.FromYAMLNode(m)
	if err != nil {
		t.Fatalf("error converting: %v", err)
	}
	_, _, err = stringify.Stringify(v, nil)
	var circ stringify.ErrCircularStructure
	if !errors.As(err, &circ) {
		t.Fatalf("got error %v, want ErrCircularStructure", err)
	}
}

func Test_FromYAMLErrors(t *testing.T) {
	if _, err := stringify.FromYAML([]byte("a: [")); err == nil {
		t.Errorf("expected a parse error")
	}

	_, err := stringify.FromYAML([]byte("? [a, b]\n: c\n"))
	var unsupported stringify.ErrUnsupportedYAMLNode
	if !errors.As(err, &unsupported) {
		t.Errorf("got error %v, want ErrUnsupportedYAMLNode", err)
	}
}
