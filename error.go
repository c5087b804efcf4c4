package stringify

import "fmt"

// ErrCircularStructure is the error returned by Stringify when a sequence or
// mapping is reached again while it is still being encoded.
type ErrCircularStructure struct {
	path string
}

func (e ErrCircularStructure) Error() string {
	return fmt.Sprintf("converting circular structure to JSON: %s refers back to an enclosing container", e.path)
}

// Path is the JSON Pointer of the entry that closes the cycle.
func (e ErrCircularStructure) Path() string { return e.path }

// ErrUnsupportedGoType is the error returned by ValueOf when it encounters a
// Go type that has no Value representation
type ErrUnsupportedGoType struct {
	typ string
}

func (e ErrUnsupportedGoType) Error() string {
	return fmt.Sprintf("unsupported Go type %s", e.typ)
}

// ErrUnsupportedYAMLNode is the error returned by FromYAMLNode when a YAML
// node cannot be represented, such as a mapping key that is not a scalar
type ErrUnsupportedYAMLNode struct {
	what   string
	line   int
	column int
}

func (e ErrUnsupportedYAMLNode) Error() string {
	return fmt.Sprintf("unsupported YAML %s at line %d, column %d", e.what, e.line, e.column)
}
