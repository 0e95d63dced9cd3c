package pipeline

import (
	"strings"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/diag"
)

// SplitField splits a logical line at its first colon. ok is false if
// there is none.
func SplitField(text string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(text, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), true
}

// handle applies one logical line to the current record.
func (p *Pipeline) handle(l lines.Line) error {
	switch l.Kind {
	case lines.Blank:
		return p.flush()

	case lines.Continuation:
		p.begin(l.Pos)
		p.report(l.Pos, p.record.Continue(l.Text))

	case lines.Field:
		p.begin(l.Pos)
		name, value, ok := SplitField(l.Text)
		if !ok {
			p.report(l.Pos, []diag.Problem{diag.Errorf("malformed line %q", l.Text)})
			return nil
		}
		p.report(l.Pos, p.record.Append(name, value))
	}
	return nil
}

func (p *Pipeline) begin(pos diag.Position) {
	if p.started {
		return
	}
	p.started = true
	p.start = pos
}
