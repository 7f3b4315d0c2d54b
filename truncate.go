package objprint

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateUnit selects what a path max length counts.
type TruncateUnit int

const (
	// Runes counts characters. It is the default.
	Runes TruncateUnit = iota
	// Cells counts terminal display cells: wide characters take two cells,
	// control characters none. East Asian ambiguous characters are narrow
	// regardless of the process locale.
	Cells
)

// cellWidth is fixed so that output does not depend on LC_ALL or LANG.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// truncate keeps prefix and at most n units of the value rendered after it.
// Line terminators and indentation left at the cut point are dropped and
// exactly one terminator is appended.
func (p printer) truncate(line, prefix string, n int) string {
	value := strings.TrimPrefix(line, prefix)
	var cut string
	switch p.unit {
	case Cells:
		cut = cellWidth.Truncate(value, n, "")
	default:
		cut = firstRunes(value, n)
	}
	return prefix + strings.TrimRight(cut, p.trimSet) + newline
}

func firstRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
