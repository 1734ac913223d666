package tabulate

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// cells measures terminal cells. Ambiguous-width runes are narrow regardless
// of the locale so that output does not depend on the environment.
var cells = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// DisplayWidth returns the display width of field under mode.
//
// Valid UTF-8 is measured in code points ([WidthRunes]) or terminal cells
// ([WidthCells]). Anything else is measured in bytes.
func DisplayWidth(field string, mode WidthMode) int {
	if !utf8.ValidString(field) {
		return len(field)
	}
	if mode == WidthCells {
		return cells.StringWidth(field)
	}
	return utf8.RuneCountInString(field)
}
