package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// sink writes to w, or to the file at path when path is set. The file is
// only created on the first write or on a successful Close, so a run that
// fails before the table is flushed leaves no file behind.
type sink struct {
	path string
	w    io.Writer
	f    *os.File
}

func (s *sink) Write(p []byte) (int, error) {
	if s.path == "" {
		return s.w.Write(p)
	}
	if s.f == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}
	return s.f.Write(p)
}

func (s *sink) open() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	s.f = f
	return nil
}

// Close creates the output file if nothing was written to it and closes it.
func (s *sink) Close() error {
	if s.path == "" {
		return nil
	}
	if s.f == nil {
		if err := s.open(); err != nil {
			return err
		}
	}
	return s.f.Close()
}

// abort closes the file, if any, without creating one.
func (s *sink) abort() {
	if s.f != nil {
		_ = s.f.Close()
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
