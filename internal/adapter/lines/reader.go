// Package lines splits record files into logical lines: comments are
// dropped, indented lines are folded into the line they continue, and
// blank lines are passed on as record separators.
package lines

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/groblad/groblad/internal/diag"
)

// StdinName is the source name used in diagnostics for standard input.
const StdinName = "<stdin>"

const maxLineLength = 1 << 20

// Kind classifies a logical line.
type Kind int

const (
	// Field is an unindented line with any continuation lines folded in.
	Field Kind = iota
	// Continuation is an indented line with no line before it in the
	// same block to attach to.
	Continuation
	// Blank ends a record. One is also produced at the end of each file.
	Blank
)

// Line is one logical line. Pos is where it started.
type Line struct {
	Pos  diag.Position
	Text string
	Kind Kind
}

// Option configures a Reader.
type Option func(*Reader)

// WithLatin1 decodes input as ISO 8859-1 instead of UTF-8.
func WithLatin1() Option {
	return func(r *Reader) { r.latin1 = true }
}

// WithLogger sets the logger for operational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) { r.logger = logger }
}

// WithOpenFunc calls fn with the source name each time an input is opened.
func WithOpenFunc(fn func(source string)) Option {
	return func(r *Reader) { r.onOpen = fn }
}

// Reader produces logical lines from a list of files read in order, or
// from standard input if the list is empty. Only one file is open at a
// time.
type Reader struct {
	names  []string
	stdin  io.Reader
	latin1 bool
	logger *slog.Logger
	onOpen func(string)

	next    int
	scanner *bufio.Scanner
	closer  io.Closer
	source  string
	lineno  int

	pending *Line
	queue   []Line
	err     error
}

// Open prepares to read names; "-" means stdin. Nothing is opened until
// the first call to Next.
func Open(names []string, stdin io.Reader, opts ...Option) *Reader {
	if len(names) == 0 {
		names = []string{"-"}
	}
	r := &Reader{
		names:  names,
		stdin:  stdin,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next logical line, io.EOF after the last one, or the
// error that stopped reading (a file that could not be opened or read).
func (r *Reader) Next() (Line, error) {
	for {
		if len(r.queue) > 0 {
			l := r.queue[0]
			r.queue = r.queue[1:]
			return l, nil
		}
		if r.err != nil {
			return Line{}, r.err
		}

		if r.scanner == nil {
			if r.next >= len(r.names) {
				r.err = io.EOF
				continue
			}
			if err := r.open(r.names[r.next]); err != nil {
				r.err = err
				continue
			}
			r.next++
		}

		if !r.scanner.Scan() {
			err := r.scanner.Err()
			r.closeCurrent()
			r.flush()
			r.queue = append(r.queue, Line{Pos: r.pos(), Kind: Blank})
			if err != nil {
				r.err = err
			}
			continue
		}

		r.lineno++
		r.feed(r.scanner.Text())
	}
}

// Close releases the file being read, if any.
func (r *Reader) Close() error {
	return r.closeCurrent()
}

func (r *Reader) feed(raw string) {
	text := strings.TrimRight(raw, " \t\r")
	switch {
	case text == "":
		r.flush()
		r.queue = append(r.queue, Line{Pos: r.pos(), Kind: Blank})
	case text[0] == '#':
	case text[0] == ' ' || text[0] == '\t':
		text = strings.TrimLeft(text, " \t")
		if r.pending != nil {
			r.pending.Text += " " + text
			return
		}
		r.queue = append(r.queue, Line{Pos: r.pos(), Text: text, Kind: Continuation})
	default:
		r.flush()
		r.pending = &Line{Pos: r.pos(), Text: text, Kind: Field}
	}
}

func (r *Reader) flush() {
	if r.pending == nil {
		return
	}
	r.queue = append(r.queue, *r.pending)
	r.pending = nil
}

func (r *Reader) pos() diag.Position {
	return diag.Position{Source: r.source, Line: r.lineno}
}

func (r *Reader) open(name string) error {
	var in io.Reader
	if name == "-" {
		in = r.stdin
		r.source = StdinName
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		in = f
		r.closer = f
		r.source = name
	}
	r.logger.Debug("reading input", "source", r.source, "latin1", r.latin1)
	if r.onOpen != nil {
		r.onOpen(r.source)
	}

	if r.latin1 {
		in = charmap.ISO8859_1.NewDecoder().Reader(in)
	}
	r.scanner = bufio.NewScanner(in)
	r.scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	r.lineno = 0
	return nil
}

func (r *Reader) closeCurrent() error {
	r.scanner = nil
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}
