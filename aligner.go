package tabulate

import (
	"bytes"
	"fmt"
	"io"
)

// Aligner buffers rows and writes them as a table whose columns line up.
//
// Column widths depend on every row, so nothing is written until [Aligner.Flush].
// An Aligner is flushed at most once; it is not safe for concurrent use.
type Aligner struct {
	w        io.Writer
	minWidth int
	pad      int
	mode     WidthMode
	rows     [][]string
	widths   []int
	flushed  bool
}

// NewAligner returns an Aligner that writes to w when flushed.
// Negative MinWidth and Pad are treated as zero.
func NewAligner(w io.Writer, opts Options) *Aligner {
	return &Aligner{
		w:        w,
		minWidth: max(opts.MinWidth, 0),
		pad:      max(opts.Pad, 0),
		mode:     opts.Width,
	}
}

// Write buffers row and widens its columns as needed.
// The row slice is retained, not copied.
func (a *Aligner) Write(row []string) error {
	if a.flushed {
		return fmt.Errorf("%w: write after flush", ErrFlushed)
	}
	if len(row) > len(a.widths) {
		a.widths = append(a.widths, make([]int, len(row)-len(a.widths))...)
	}
	for i, field := range row {
		if w := DisplayWidth(field, a.mode); w > a.widths[i] {
			a.widths[i] = w
		}
	}
	a.rows = append(a.rows, row)
	return nil
}

// Rows returns the number of buffered rows.
func (a *Aligner) Rows() int { return len(a.rows) }

// Columns returns the length of the longest buffered row.
func (a *Aligner) Columns() int { return len(a.widths) }

// Flush renders every buffered row and hands the table to the underlying
// writer in a single Write. The Aligner is spent afterwards, even when the
// write fails.
func (a *Aligner) Flush() error {
	if a.flushed {
		return fmt.Errorf("%w: flush called twice", ErrFlushed)
	}
	a.flushed = true
	if len(a.rows) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, row := range a.rows {
		a.renderRow(&buf, row)
	}
	a.rows, a.widths = nil, nil
	_, err := a.w.Write(buf.Bytes())
	return err
}

// renderRow writes one line. Every field but the last is padded to its
// column width; the last is written bare so lines carry no trailing space.
// Trailing empty fields are dropped for the same reason.
func (a *Aligner) renderRow(buf *bytes.Buffer, row []string) {
	last := len(row) - 1
	for last > 0 && row[last] == "" {
		last--
	}
	for i, field := range row[:last+1] {
		buf.WriteString(field)
		if i == last {
			break
		}
		cell := max(a.widths[i], a.minWidth) + a.pad
		writeSpaces(buf, cell-DisplayWidth(field, a.mode))
	}
	buf.WriteByte('\n')
}

func writeSpaces(buf *bytes.Buffer, n int) {
	for range n {
		buf.WriteByte(' ')
	}
}
