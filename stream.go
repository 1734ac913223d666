package tabulate

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Records yields the rows of delimited data read from r. A read or parse
// error is yielded once with a nil row and ends the sequence.
func Records(r io.Reader, delim byte) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		cr := NewReader(r, delim)
		for {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// WriteIter buffers every row of seq. It stops at the first error, which is
// returned; rows buffered before it stay buffered.
func (a *Aligner) WriteIter(seq iter.Seq2[[]string, error]) error {
	for row, err := range seq {
		if err != nil {
			return err
		}
		if err := a.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Copy reads delimited records from r and writes them to w as an aligned
// table, condensing fields first when opts.Condense is set.
//
// The whole input is read before anything is written. When opts are invalid
// or the input is malformed, Copy returns an error and w receives nothing.
func Copy(w io.Writer, r io.Reader, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	a := NewAligner(w, opts)
	if err := a.WriteIter(condensed(Records(r, opts.Delimiter), opts)); err != nil {
		return fmt.Errorf("read record %d: %w", a.Rows()+1, err)
	}
	return a.Flush()
}

func condensed(seq iter.Seq2[[]string, error], opts Options) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for row, err := range seq {
			if err == nil {
				row = condenseRow(row, opts)
			}
			if !yield(row, err) {
				return
			}
		}
	}
}
