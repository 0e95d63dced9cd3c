package output

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/groblad/groblad/internal/domain"
)

var (
	errNotPositional = errors.New("sink is field-oriented")
	errNotByField    = errors.New("sink is positional")
)

// cellCleaner keeps values from breaking the row structure.
var cellCleaner = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// TSV is a positional sink: one tab-separated row per record, optionally
// preceded by a header row with the official field names.
type TSV struct {
	w          *bufio.Writer
	header     bool
	headerDone bool
}

// NewTSV creates a TSV sink writing to w. With header set, the first row
// written is preceded by the field names.
func NewTSV(w io.Writer, header bool) *TSV {
	return &TSV{w: bufio.NewWriter(w), header: header}
}

func (s *TSV) ByField() bool { return false }

func (s *TSV) WriteField(_ domain.Field, _ string) error {
	return errNotByField
}

func (s *TSV) EndRecord() error {
	return errNotByField
}

func (s *TSV) WriteRow(values []string) error {
	if s.header && !s.headerDone {
		s.headerDone = true
		if err := s.writeLine(domain.OfficialNames()); err != nil {
			return err
		}
	}
	return s.writeLine(values)
}

func (s *TSV) writeLine(values []string) error {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = cellCleaner.Replace(v)
	}
	if _, err := s.w.WriteString(strings.Join(cells, "\t")); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush writes any buffered output.
func (s *TSV) Flush() error {
	return s.w.Flush()
}
