// Package tabulate renders delimited records as a plain-text table whose
// columns line up.
//
// The central entry points are [Copy], which reads delimited data from an
// [io.Reader], and [Write], which takes rows already in memory. Both build on
// [Aligner], which buffers every row, tracks the widest field per column and
// writes the whole table when flushed:
//
//	a := tabulate.NewAligner(os.Stdout, tabulate.DefaultOptions())
//	a.Write([]string{"a", "bb"})
//	a.Write([]string{"ccc", "d"})
//	a.Flush()
//
// produces
//
//	a    bb
//	ccc  d
//
// # Layout
//
// Every field except the last in its row is padded with spaces to
// max(column width, MinWidth) + Pad. The last field of a row is never padded,
// so lines carry no trailing whitespace. No row is special: a header row is
// aligned like any other.
//
// # Width
//
// Column widths are measured with [DisplayWidth]. Valid UTF-8 counts code
// points by default ([WidthRunes]) or terminal cells ([WidthCells]), so
// multi-byte text aligns correctly. Fields that are not valid UTF-8 count
// bytes.
//
// # Condensing
//
// [Condense] bounds a field to a display width. Truncated fields end in
// [Ellipsis], or [ByteEllipsis] when they are not valid UTF-8.
//
// # Memory
//
// The table is held in memory until it is flushed because the width of a
// column is only known once every row has been seen.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidDelimiter] — delimiter is not a single usable character
//   - [ErrInvalidOption] — negative width, pad or condense limit, unknown key
//   - [ErrFlushed] — Write or Flush on an Aligner that was already flushed
package tabulate
