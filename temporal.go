package stringify

import (
	"fmt"
	"time"
)

// formatTime renders t in UTC with millisecond precision, e.g.
// 2022-09-12T10:00:00.000Z. Years outside 0..9999 use the expanded
// six-digit signed form, e.g. +010000-01-01T00:00:00.000Z.
func formatTime(t time.Time) string {
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return fmt.Sprintf("%+07d", y) + t.Format("-01-02T15:04:05.000Z")
	}
	return t.Format("2006-01-02T15:04:05.000Z")
}
