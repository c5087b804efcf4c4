package stringify

// Replacer controls which mapping entries are emitted, or how values are
// rewritten, while a value graph is encoded.
//
// The implementations are [KeyAllowlist] and [TransformFunc]. A nil Replacer
// encodes everything as-is.
type Replacer interface {
	isReplacer()
}

// KeyAllowlist emits only the mapping entries whose key is listed, at every
// depth. Sequence elements and the root value are never filtered.
type KeyAllowlist []string

func (KeyAllowlist) isReplacer() {}

// TransformFunc is called for every key/value pair before it is encoded,
// including the root value, which is passed with an empty key and a
// one-entry owner mapping {"": root}. Sequence elements are passed with
// their decimal index as key.
//
// owner is the container the pair belongs to. The returned value replaces v
// for all further processing; returning [Absent] drops a mapping entry or
// turns a sequence element into null.
type TransformFunc func(owner Value, key string, v Value) Value

func (TransformFunc) isReplacer() {}
