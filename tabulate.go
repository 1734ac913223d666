package tabulate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFlushed          = errors.New("aligner already flushed")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrInvalidOption    = errors.New("invalid option")
)

// WidthMode selects how the display width of a field is measured.
type WidthMode string

const (
	// WidthRunes counts code points for valid UTF-8 and bytes otherwise.
	WidthRunes WidthMode = "runes"
	// WidthCells counts terminal cells for valid UTF-8 and bytes otherwise.
	WidthCells WidthMode = "cells"
)

var widthModes = []WidthMode{WidthRunes, WidthCells}

// String returns the mode name.
func (m WidthMode) String() string { return string(m) }

// ParseWidthMode parses a width mode name. The empty string selects
// [WidthRunes].
func ParseWidthMode(s string) (WidthMode, error) {
	if s == "" {
		return WidthRunes, nil
	}
	for _, m := range widthModes {
		if string(m) == strings.ToLower(s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: width mode %q", ErrInvalidOption, s)
}

// Options controls how a table is read and laid out.
type Options struct {
	// MinWidth is the floor on a column's content width before padding.
	MinWidth int
	// Pad is the number of spaces added after every non-final column.
	Pad int
	// Condense is the maximum display width of a field. Zero disables it.
	Condense int
	// Delimiter is the input field separator.
	Delimiter byte
	// Width selects the display width measure. Empty means [WidthRunes].
	Width WidthMode
}

// DefaultOptions returns the options used when nothing is configured:
// a minimum width of 2, a pad of 2, no condensing and comma-separated input.
func DefaultOptions() Options {
	return Options{
		MinWidth:  2,
		Pad:       2,
		Delimiter: ',',
		Width:     WidthRunes,
	}
}

// Validate reports the first configuration problem in o.
func (o Options) Validate() error {
	if o.MinWidth < 0 {
		return fmt.Errorf("%w: minimum width %d is negative", ErrInvalidOption, o.MinWidth)
	}
	if o.Pad < 0 {
		return fmt.Errorf("%w: pad %d is negative", ErrInvalidOption, o.Pad)
	}
	if o.Condense < 0 {
		return fmt.Errorf("%w: condense limit %d is negative", ErrInvalidOption, o.Condense)
	}
	if err := validDelimiter(o.Delimiter); err != nil {
		return err
	}
	if _, err := ParseWidthMode(string(o.Width)); err != nil {
		return err
	}
	return nil
}

// Write condenses and aligns rows and writes the table to w.
// Nothing is written when opts are invalid.
func Write(w io.Writer, opts Options, rows ...[]string) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	a := NewAligner(w, opts)
	for _, row := range rows {
		if err := a.Write(condenseRow(row, opts)); err != nil {
			return err
		}
	}
	return a.Flush()
}

// Marshal aligns rows and returns the bytes.
func Marshal(opts Options, rows ...[]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts, rows...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// condenseRow returns row itself when no field needs truncating.
func condenseRow(row []string, opts Options) []string {
	if opts.Condense <= 0 {
		return row
	}
	var out []string
	for i, field := range row {
		c := Condense(field, opts.Condense, opts.Width)
		if out == nil && c != field {
			out = make([]string, len(row))
			copy(out, row[:i])
		}
		if out != nil {
			out[i] = c
		}
	}
	if out == nil {
		return row
	}
	return out
}
