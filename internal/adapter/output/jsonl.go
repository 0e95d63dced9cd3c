package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/groblad/groblad/internal/domain"
)

// JSONLines is a field-oriented sink writing one JSON object per record.
// Repeatable fields become arrays; all other values are strings.
type JSONLines struct {
	w   *bufio.Writer
	enc *json.Encoder
	cur map[string]any
}

// NewJSONLines creates a JSONLines sink writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONLines{w: bw, enc: enc}
}

func (s *JSONLines) ByField() bool { return true }

func (s *JSONLines) WriteField(f domain.Field, value string) error {
	if value == "" {
		return nil
	}
	if s.cur == nil {
		s.cur = make(map[string]any)
	}
	if !f.Repeatable() {
		s.cur[f.String()] = value
		return nil
	}
	vs, _ := s.cur[f.String()].([]string)
	s.cur[f.String()] = append(vs, value)
	return nil
}

func (s *JSONLines) EndRecord() error {
	rec := s.cur
	s.cur = nil
	if rec == nil {
		rec = map[string]any{}
	}
	if err := s.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}

// WriteRow is not used; JSONLines is field-oriented.
func (s *JSONLines) WriteRow(_ []string) error {
	return errNotPositional
}

// Flush writes any buffered output.
func (s *JSONLines) Flush() error {
	return s.w.Flush()
}
