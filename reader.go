package tabulate

import (
	"encoding/csv"
	"fmt"
	"io"
)

// NewReader returns a CSV reader over r that splits fields on delim.
// Rows may have any number of fields and no record is treated as a header.
func NewReader(r io.Reader, delim byte) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1
	return cr
}

// ParseDelimiter parses a delimiter given on the command line or in a config
// file. It must be exactly one ASCII character; the two-character escape `\t`
// is accepted for tab.
func ParseDelimiter(s string) (byte, error) {
	if s == `\t` {
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, s)
	}
	if err := validDelimiter(s[0]); err != nil {
		return 0, err
	}
	return s[0], nil
}

// validDelimiter rejects bytes encoding/csv cannot split on.
func validDelimiter(d byte) error {
	switch {
	case d == 0, d == '"', d == '\r', d == '\n':
		return fmt.Errorf("%w: %q cannot separate fields", ErrInvalidDelimiter, d)
	case d >= 0x80:
		return fmt.Errorf("%w: %q is not ASCII", ErrInvalidDelimiter, d)
	}
	return nil
}
