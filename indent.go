package stringify

import "strings"

// maxGapLen is the longest indentation unit, in characters.
const maxGapLen = 10

// Indent is the indentation unit used for pretty-printing. The zero Indent
// produces compact output.
type Indent struct {
	gap string
}

// Spaces indents with n spaces. n is capped at 10; n < 1 is compact.
func Spaces(n int) Indent {
	if n < 1 {
		return Indent{}
	}
	return Indent{gap: strings.Repeat(" ", min(n, maxGapLen))}
}

// Gap indents with s, truncated to its first 10 characters. An empty s is
// compact.
func Gap(s string) Indent {
	if r := []rune(s); len(r) > maxGapLen {
		s = string(r[:maxGapLen])
	}
	return Indent{gap: s}
}

// String returns the indentation unit.
func (i Indent) String() string { return i.gap }

func (i Indent) IsCompact() bool { return i.gap == "" }
