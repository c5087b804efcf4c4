package stringify

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"sort"
	"time"
)

var (
	valueType    = reflect.TypeOf(Value{})
	mappingType  = reflect.TypeOf((*Mapping)(nil))
	sequenceType = reflect.TypeOf((*Sequence)(nil))
	timeType     = reflect.TypeOf(time.Time{})
)

// ValueOf converts native Go data into a Value.
//
// Supported are nil, bools, integer and floating point numbers, strings,
// time.Time, slices and arrays, maps with string keys, funcs, pointers and
// interfaces holding any of these, and Value, *Mapping and *Sequence
// themselves. Map keys are sorted so the result is deterministic. []byte
// becomes a base64 string. Nil maps, slices and pointers become Null.
//
// A Go map, slice or pointer reached twice converts to the same container,
// so data that refers to itself converts without error and is reported by
// Stringify as [ErrCircularStructure]. Other Go types yield
// [ErrUnsupportedGoType].
func ValueOf(x any) (Value, error) {
	c := &converter{
		seen:   map[identity]Value{},
		active: map[identity]bool{},
	}
	return c.convert(reflect.ValueOf(x))
}

// identity distinguishes Go references. Slices also carry their length since
// two slices may share a backing array.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type converter struct {
	seen map[identity]Value

	// active holds the pointers being dereferenced, to stop pointer loops
	// that never pass through a container.
	active map[identity]bool
}

func (c *converter) convert(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	switch rv.Type() {
	case valueType:
		return rv.Interface().(Value), nil
	case mappingType:
		return MappingOf(rv.Interface().(*Mapping)), nil
	case sequenceType:
		return SequenceOf(rv.Interface().(*Sequence)), nil
	case timeType:
		return Time(rv.Interface().(time.Time)), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Func:
		if rv.IsNil() {
			return Null(), nil
		}
		return Func(rv.Interface()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return c.convert(rv.Elem())
	case reflect.Pointer:
		return c.convertPointer(rv)
	case reflect.Map:
		return c.convertMap(rv)
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(base64.StdEncoding.EncodeToString(rv.Bytes())), nil
		}
		id := identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
		if v, ok := c.seen[id]; ok {
			return v, nil
		}
		return c.convertList(rv, &id)
	case reflect.Array:
		return c.convertList(rv, nil)
	}
	return Value{}, ErrUnsupportedGoType{typ: rv.Type().String()}
}

func (c *converter) convertPointer(rv reflect.Value) (Value, error) {
	if rv.IsNil() {
		return Null(), nil
	}
	id := identity{typ: rv.Type(), ptr: rv.Pointer()}
	if c.active[id] {
		return Value{}, ErrUnsupportedGoType{typ: fmt.Sprintf("%s (pointer cycle)", rv.Type())}
	}
	c.active[id] = true
	defer delete(c.active, id)
	return c.convert(rv.Elem())
}

func (c *converter) convertMap(rv reflect.Value) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Value{}, ErrUnsupportedGoType{typ: rv.Type().String()}
	}
	if rv.IsNil() {
		return Null(), nil
	}
	id := identity{typ: rv.Type(), ptr: rv.Pointer()}
	if v, ok := c.seen[id]; ok {
		return v, nil
	}

	m := NewMapping()
	v := MappingOf(m)
	c.seen[id] = v

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		elem, err := c.convert(rv.MapIndex(k))
		if err != nil {
			return Value{}, fmt.Errorf("failed to convert map value %q: %w", k.String(), err)
		}
		m.Set(k.String(), elem)
	}
	return v, nil
}

// convertList converts a slice or array. id is nil for arrays, which are
// values in Go and cannot be shared.
func (c *converter) convertList(rv reflect.Value, id *identity) (Value, error) {
	s := NewSequence(rv.Len())
	v := SequenceOf(s)
	if id != nil {
		c.seen[*id] = v
	}
	for i := 0; i < rv.Len(); i++ {
		elem, err := c.convert(rv.Index(i))
		if err != nil {
			return Value{}, fmt.Errorf("failed to convert element %d: %w", i, err)
		}
		s.Set(i, elem)
	}
	return v, nil
}
