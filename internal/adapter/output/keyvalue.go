// Package output holds the sinks that serialise canonical records.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/groblad/groblad/internal/domain"
)

// KeyValue is a field-oriented debug dump: one "name: value" line per
// field, records separated by a blank line.
type KeyValue struct {
	w       *bufio.Writer
	started bool
	inside  bool
}

// NewKeyValue creates a KeyValue sink writing to w.
func NewKeyValue(w io.Writer) *KeyValue {
	return &KeyValue{w: bufio.NewWriter(w)}
}

func (s *KeyValue) ByField() bool { return true }

func (s *KeyValue) WriteField(f domain.Field, value string) error {
	if value == "" {
		return nil
	}
	if !s.inside && s.started {
		if err := s.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	s.inside = true
	s.started = true
	_, err := fmt.Fprintf(s.w, "%-20s: %s\n", f, value)
	return err
}

func (s *KeyValue) EndRecord() error {
	s.inside = false
	return nil
}

// WriteRow is not used; KeyValue is field-oriented.
func (s *KeyValue) WriteRow(_ []string) error {
	return errNotPositional
}

// Flush writes any buffered output.
func (s *KeyValue) Flush() error {
	return s.w.Flush()
}
