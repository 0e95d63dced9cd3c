// Package diag is the diagnostic log shared by the groblad filters.
//
// Problems found in record data never abort a run. They are returned as
// values by the parsing and canonicalisation code, stamped with the input
// position by the caller, and handed to a Log. What the Log does with
// them (print, count, collect) is up to the implementation.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Severity classifies a problem. Neither level stops processing.
type Severity int

const (
	// Warning is a semantic problem: unknown or duplicate field, value
	// outside its vocabulary, missing mandatory field.
	Warning Severity = iota
	// Error is a structural problem: a line that cannot be split into
	// field and value, or a misplaced block delimiter.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Problem is an anomaly without position information.
type Problem struct {
	Severity Severity
	Message  string
}

// Warnf builds a Warning problem.
func Warnf(format string, args ...any) Problem {
	return Problem{Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// Errorf builds an Error problem.
func Errorf(format string, args ...any) Problem {
	return Problem{Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// Position identifies a line of input.
type Position struct {
	Source string
	Line   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Source, p.Line)
}

// Entry is a problem at a position.
type Entry struct {
	Pos Position
	Problem
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Severity, e.Message)
}

// Log receives diagnostics.
type Log interface {
	Report(e Entry)
}

// ReportAll stamps each problem with pos and reports it.
func ReportAll(log Log, pos Position, problems []Problem) {
	for _, p := range problems {
		log.Report(Entry{Pos: pos, Problem: p})
	}
}

// StreamLog prints one line per entry to w and keeps counts per severity.
type StreamLog struct {
	w      io.Writer
	mu     sync.Mutex
	counts map[Severity]int
}

// NewStreamLog creates a StreamLog writing to w, normally os.Stderr.
func NewStreamLog(w io.Writer) *StreamLog {
	return &StreamLog{w: w, counts: make(map[Severity]int)}
}

func (l *StreamLog) Report(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[e.Severity]++
	fmt.Fprintln(l.w, e.String()) //nolint:errcheck // diagnostics are best-effort
}

// Count returns how many entries of severity s were reported.
func (l *StreamLog) Count(s Severity) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[s]
}

// Collector keeps entries in memory, for tests and for callers that want
// to inspect diagnostics before printing them.
type Collector struct {
	Entries []Entry
}

func (c *Collector) Report(e Entry) {
	c.Entries = append(c.Entries, e)
}

// Messages returns the message texts in report order.
func (c *Collector) Messages() []string {
	out := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e.Message
	}
	return out
}

// Tee fans entries out to several logs.
type Tee []Log

func (t Tee) Report(e Entry) {
	for _, l := range t {
		l.Report(e)
	}
}
