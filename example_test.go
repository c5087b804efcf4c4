package stringify_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dhoelle/stringify"
)

func Example() {
	// A value graph with every kind of value
	in := stringify.Object(
		stringify.Entry{Key: "name", Value: stringify.String(`Alice "Al" Liddell`)},
		stringify.Entry{Key: "age", Value: stringify.Int(25)},
		stringify.Entry{Key: "active", Value: stringify.Bool(true)},
		stringify.Entry{Key: "score", Value: stringify.Number(math.NaN())},
		stringify.Entry{Key: "joined", Value: stringify.Time(time.Date(2022, 9, 12, 10, 0, 0, 0, time.UTC))},
		stringify.Entry{Key: "greet", Value: stringify.Func(func() string { return "hi" })},
		stringify.Entry{Key: "tags", Value: stringify.Array(
			stringify.String("reader"),
			stringify.Absent(),
			stringify.Null(),
		)},
	)

	text, ok, err := stringify.Stringify(in, nil)
	if err != nil {
		panic("failed to stringify: " + err.Error())
	}
	fmt.Println(ok)
	fmt.Println(text)

	// Output:
	// true
	// {"name":"Alice \"Al\" Liddell","age":25,"active":true,"score":null,"joined":"2022-09-12T10:00:00.000Z","tags":["reader",null,null]}
}

func Example_indent() {
	in := stringify.Object(
		stringify.Entry{Key: "user", Value: stringify.Object(
			stringify.Entry{Key: "name", Value: stringify.String("Alice")},
			stringify.Entry{Key: "hobbies", Value: stringify.Array(stringify.String("reading"), stringify.String("chess"))},
		)},
	)

	text, _, err := stringify.Stringify(in, &stringify.Config{Indent: stringify.Spaces(4)})
	if err != nil {
		panic("failed to stringify: " + err.Error())
	}
	fmt.Println(text)

	// Output:
	// {
	//     "user": {
	//         "name": "Alice",
	//         "hobbies": [
	//             "reading",
	//             "chess"
	//         ]
	//     }
	// }
}

func Example_keyAllowlist() {
	in := stringify.Object(
		stringify.Entry{Key: "name", Value: stringify.String("Alice")},
		stringify.Entry{Key: "age", Value: stringify.Int(25)},
		stringify.Entry{Key: "city", Value: stringify.String("Wonderland")},
	)

	cfg := &stringify.Config{Replacer: stringify.KeyAllowlist{"name", "city"}}
	text, _, err := stringify.Stringify(in, cfg)
	if err != nil {
		panic("failed to stringify: " + err.Error())
	}
	fmt.Println(text)

	// Output:
	// {"name":"Alice","city":"Wonderland"}
}

func Example_transform() {
	in := stringify.Object(
		stringify.Entry{Key: "name", Value: stringify.String("alice")},
		stringify.Entry{Key: "password", Value: stringify.String("secret")},
		stringify.Entry{Key: "city", Value: stringify.String("wonderland")},
	)

	// Drop the password and upper-case every other string
	cfg := &stringify.Config{
		Replacer: stringify.TransformFunc(func(owner stringify.Value, key string, v stringify.Value) stringify.Value {
			if key == "password" {
				return stringify.Absent()
			}
			if v.Kind() == stringify.KindString {
				return stringify.String(strings.ToUpper(v.Text()))
			}
			return v
		}),
	}
	text, _, err := stringify.Stringify(in, cfg)
	if err != nil {
		panic("failed to stringify: " + err.Error())
	}
	fmt.Println(text)

	// Output:
	// {"name":"ALICE","city":"WONDERLAND"}
}

func Example_circularStructure() {
	m := stringify.NewMapping()
	m.Set("name", stringify.String("ouroboros"))
	m.Set("self", stringify.MappingOf(m))

	_, _, err := stringify.Stringify(stringify.MappingOf(m), nil)

	var circ stringify.ErrCircularStructure
	if errors.As(err, &circ) {
		fmt.Println("cycle at", circ.Path())
	}

	// Output:
	// cycle at /self
}

func Example_noOutput() {
	text, ok, err := stringify.Stringify(stringify.Symbol("id"), nil)
	fmt.Printf("%q %v %v\n", text, ok, err)

	// Output:
	// "" false <nil>
}
