package stringify

// Escaping selects how string contents are escaped.
type Escaping uint8

const (
	// EscapeStandard escapes strings the way a standard JSON encoder does:
	// quotes, backslashes and control characters are escaped, and invalid
	// UTF-8 is replaced with U+FFFD. Keys are escaped the same way.
	EscapeStandard Escaping = iota

	// EscapeQuotesOnly only prefixes double quotes with a backslash and
	// writes mapping keys verbatim. Output may not be valid JSON when
	// strings hold backslashes or control characters.
	EscapeQuotesOnly
)

func (e Escaping) String() string {
	switch e {
	case EscapeStandard:
		return "standard"
	case EscapeQuotesOnly:
		return "quotes"
	}
	return "unknown"
}

// Config controls a single Stringify call. A nil *Config encodes compactly,
// without a replacer, using standard escaping.
type Config struct {
	// Replacer filters or rewrites values during encoding. Nil means none.
	Replacer Replacer

	// Indent is the indentation unit. The zero Indent is compact.
	Indent Indent

	Escaping Escaping
}
