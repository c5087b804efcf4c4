// SPDX-FileCopyrightText: © 2024 Donald Hoelle. All rights reserved.
// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package [stringify] encodes dynamically-typed value graphs as JSON text,
// producing the same output as ECMAScript's JSON.stringify.
//
// Values are built from a closed set of kinds ([Null], [Bool], [Number],
// [String], [Time], [Array], [Object], plus the kinds that never produce
// output: [Func], [Symbol] and [Absent]) and encoded with [Stringify]:
//
//	v := stringify.Object(
//	  stringify.Entry{Key: "name", Value: stringify.String("Alice")},
//	  stringify.Entry{Key: "tags", Value: stringify.Array(stringify.Int(1), stringify.Absent())},
//	)
//	text, ok, err := stringify.Stringify(v, nil)
//	// text == `{"name":"Alice","tags":[1,null]}`, ok == true, err == nil
//
// ok is false when the root value itself produces no output, for example
// when it is a [Func].
//
// # Output rules
//
// Mapping entries are written in insertion order. Entries whose value
// produces no output are omitted, while sequence elements that produce no
// output are written as null. NaN and the infinities are written as null,
// as are invalid [Time] values. Valid times are written as quoted UTC
// timestamps with millisecond precision, like "2022-09-12T10:00:00.000Z".
//
// # Configuration
//
// A non-nil [Config] selects a [Replacer], an [Indent] and an [Escaping]
// policy:
//
//	cfg := &stringify.Config{
//	  Replacer: stringify.KeyAllowlist{"name"},
//	  Indent:   stringify.Spaces(2),
//	}
//
// [KeyAllowlist] keeps only the listed mapping keys, at every depth.
// [TransformFunc] is called for every key/value pair, including the root
// under the empty key, and may replace the value with anything, including
// [Absent] to drop it.
//
// [Spaces] and [Gap] produce indented output, one element per line; the
// indentation unit is at most 10 characters long.
//
// # Circular structures
//
// Sequences and mappings are reference types. When a container is reached
// again while it is still being encoded, Stringify fails with
// [ErrCircularStructure] and returns no text. A container that is merely
// shared, appearing twice without containing itself, is encoded twice.
//
// # Other sources of values
//
// [ValueOf] converts native Go data (maps, slices, numbers, time.Time, ...)
// and [FromYAML] converts YAML documents, keeping key order. Both preserve
// reference identity, so self-referential input is detected by Stringify.
//
// # JSON v2
//
// [Value], [*Mapping] and [*Sequence] implement the MarshalJSONV2 method of
// [github.com/go-json-experiment/json]. Use [JSONOptions] to encode them
// with a particular [Config] when they are embedded in other Go values:
//
//	b, err := json.Marshal(in, stringify.JSONOptions(cfg))
//
// [github.com/go-json-experiment/json]: https://github.com/go-json-experiment/json
package stringify
