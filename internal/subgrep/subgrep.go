// Package subgrep filters "{ ... }" blocks by regular expression. Text
// outside blocks is copied unchanged; a block is copied whole if any of
// its lines matches any pattern, or if none does when inverted.
package subgrep

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
)

var (
	beginRe = regexp.MustCompile(`^\{\s*$`)
	endRe   = regexp.MustCompile(`^\}\s*$`)
)

// Filter copies r to w, dropping the blocks that do not qualify. A block
// left open at end of input is treated as if it had been closed.
func Filter(r io.Reader, w io.Writer, patterns []*regexp.Regexp, invert bool) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var (
		block  []string
		inside bool
	)
	emit := func() {
		if matches(block, patterns) != invert {
			for _, s := range block {
				bw.WriteString(s)
			}
		}
		block = block[:0]
	}

	for {
		s, err := br.ReadString('\n')
		if s != "" {
			text := strings.TrimRight(s, "\r\n")
			switch {
			case !inside && beginRe.MatchString(text):
				block = append(block[:0], s)
				inside = true
			case !inside:
				bw.WriteString(s)
			case endRe.MatchString(text):
				block = append(block, s)
				inside = false
				emit()
			default:
				block = append(block, s)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	if inside {
		emit()
	}
	return bw.Flush()
}

func matches(block []string, patterns []*regexp.Regexp) bool {
	for _, s := range block {
		s = strings.TrimRight(s, "\r\n")
		for _, p := range patterns {
			if p.MatchString(s) {
				return true
			}
		}
	}
	return false
}

// Compile compiles each expression, stopping at the first bad one.
func Compile(exprs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}
