package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryString(t *testing.T) {
	e := Entry{
		Pos:     Position{Source: "2011.txt", Line: 17},
		Problem: Warnf("unknown field %q", "xyz"),
	}
	assert.Equal(t, `2011.txt:17: warning: unknown field "xyz"`, e.String())

	e.Problem = Errorf("malformed line %q", "foo")
	assert.Equal(t, `2011.txt:17: error: malformed line "foo"`, e.String())
}

func TestStreamLog(t *testing.T) {
	var buf bytes.Buffer
	log := NewStreamLog(&buf)

	pos := Position{Source: "<stdin>", Line: 3}
	ReportAll(log, pos, []Problem{Warnf("a"), Warnf("b"), Errorf("c")})

	assert.Equal(t, "<stdin>:3: warning: a\n<stdin>:3: warning: b\n<stdin>:3: error: c\n", buf.String())
	assert.Equal(t, 2, log.Count(Warning))
	assert.Equal(t, 1, log.Count(Error))
}

func TestTee(t *testing.T) {
	var a, b Collector
	ReportAll(Tee{&a, &b}, Position{Source: "f", Line: 1}, []Problem{Warnf("x")})

	assert.Equal(t, []string{"x"}, a.Messages())
	assert.Equal(t, []string{"x"}, b.Messages())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
