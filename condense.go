package tabulate

import (
	"unicode/utf8"
)

// Truncation markers. A condensed field always ends in exactly one marker
// unit, so a field cut to n units is distinguishable from one that was n
// units long to begin with.
const (
	// Ellipsis ends a truncated UTF-8 field. It is one code point and one
	// terminal cell wide.
	Ellipsis = "…"
	// ByteEllipsis ends a truncated field that is not valid UTF-8.
	ByteEllipsis = '.'
)

// Condense bounds the display width of field to limit.
//
// A limit of zero or less disables condensing. A field no wider than limit is
// returned as is. A wider field is cut to limit-1 units and [Ellipsis] (or
// [ByteEllipsis] when field is not valid UTF-8) is appended. UTF-8 fields are
// cut on a code point boundary. In [WidthCells] mode they are cut on a
// grapheme cluster boundary and a wide cluster that would cross the limit is
// dropped whole, so the result may be one cell narrower than limit.
func Condense(field string, limit int, mode WidthMode) string {
	if limit <= 0 || DisplayWidth(field, mode) <= limit {
		return field
	}
	if !utf8.ValidString(field) {
		buf := make([]byte, 0, limit)
		buf = append(buf, field[:limit-1]...)
		return string(append(buf, ByteEllipsis))
	}
	if mode == WidthCells {
		return cells.Truncate(field, limit, Ellipsis)
	}
	return field[:runeOffset(field, limit-1)] + Ellipsis
}

// runeOffset returns the byte offset of the n-th code point of s.
func runeOffset(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}
