// Package report reads place/plant block files and typesets them as a
// species-ordered list of sightings.
//
// A block looks like this:
//
//	{
//	place: Fiby urskog
//	coordinate: 6642 1582
//	date: 2024-06-14
//	observers: A. Andersson
//	}{
//	Vårlök :x: rikligt i sluttningen
//	Kärrviol :x:
//	}
//
// Header lines come before "}{", plant lines after it. A plant line is
// a name, a one-character mark between colons, and an optional comment.
package report

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/diag"
	"github.com/groblad/groblad/internal/domain"
)

var (
	headerRe = regexp.MustCompile(`^([\pL\w]+)\s*:\s*(.+)$`)
	plantRe  = regexp.MustCompile(`^(.+?)\s*:.:\s*(.*)$`)
)

// LineSource produces logical input lines, io.EOF after the last one.
type LineSource interface {
	Next() (lines.Line, error)
}

// Place is one visited site and the plants noted there.
type Place struct {
	Pos        diag.Position
	Name       string
	Coordinate *domain.Point
	Date       string
	Observers  string
	Comments   string

	// Plants maps a plant name, as written, to its comment.
	Plants map[string]string
}

// Contains reports whether the plant name was noted at p.
func (p *Place) Contains(name string) bool {
	_, ok := p.Plants[name]
	return ok
}

// Sighting is one plant noted at one place.
type Sighting struct {
	Place   *Place
	Comment string
}

// Report is the parsed input: places in input order, and the plant names
// seen in order of first appearance.
type Report struct {
	Places []*Place

	seen  map[string]diag.Position
	names []string
}

type state int

const (
	outside state = iota
	inHeader
	inPlants
)

// Parse reads all blocks from src. Malformed input is reported to log and
// skipped; only a read error is returned.
func Parse(src LineSource, log diag.Log) (*Report, error) {
	r := &Report{seen: make(map[string]diag.Position)}
	var (
		st    = outside
		place *Place
	)

	for {
		l, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if l.Kind == lines.Blank {
			continue
		}
		if l.Kind == lines.Continuation {
			log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Warnf("continuation line without a line to continue")})
			continue
		}

		text := strings.TrimSpace(l.Text)
		switch text {
		case "{":
			if st != outside {
				log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Errorf("unexpected %q inside a block; previous block closed", text)})
				r.Places = append(r.Places, place)
			}
			place = &Place{Pos: l.Pos, Plants: make(map[string]string)}
			st = inHeader
			continue
		case "}{":
			switch st {
			case inHeader:
				st = inPlants
			default:
				log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Errorf("unexpected %q; ignored", text)})
			}
			continue
		case "}":
			if st == outside {
				log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Errorf("unexpected %q outside a block; ignored", text)})
				continue
			}
			r.Places = append(r.Places, place)
			place = nil
			st = outside
			continue
		}

		switch st {
		case outside:
			log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Warnf("text outside a block; ignored")})
		case inHeader:
			for _, p := range place.header(text) {
				log.Report(diag.Entry{Pos: l.Pos, Problem: p})
			}
		case inPlants:
			m := plantRe.FindStringSubmatch(text)
			if m == nil {
				log.Report(diag.Entry{Pos: l.Pos, Problem: diag.Warnf("malformed plant line %q; ignored", text)})
				continue
			}
			name := m[1]
			place.Plants[name] = m[2]
			if _, ok := r.seen[name]; !ok {
				r.seen[name] = l.Pos
				r.names = append(r.names, name)
			}
		}
	}

	if st != outside {
		log.Report(diag.Entry{Pos: place.Pos, Problem: diag.Errorf("block is not closed")})
		r.Places = append(r.Places, place)
	}
	return r, nil
}

func (p *Place) header(text string) []diag.Problem {
	m := headerRe.FindStringSubmatch(text)
	if m == nil {
		return []diag.Problem{diag.Errorf("malformed line %q", text)}
	}
	name, value := strings.ToLower(m[1]), strings.TrimSpace(m[2])
	switch name {
	case "place", "lokal", "lokalnamn":
		p.Name = value
	case "coordinate", "koordinat":
		pt, err := parseCoordinate(value)
		if err != nil {
			return []diag.Problem{diag.Warnf("bad coordinate %q ignored", value)}
		}
		p.Coordinate = &pt
	case "date", "datum":
		p.Date = value
	case "observers", "observatörer":
		p.Observers = value
	case "comments", "kommentar":
		p.Comments = value
	default:
		return []diag.Problem{diag.Warnf("unknown header %q", text)}
	}
	return nil
}

func parseCoordinate(s string) (domain.Point, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("want two ordinates, got %d", len(parts))
	}
	north, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.Point{}, err
	}
	east, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Point{}, err
	}
	if north <= 0 || east <= 0 {
		return domain.Point{}, errors.New("ordinates must be positive")
	}
	return domain.NewPoint(north, east), nil
}

// SpeciesList is the ordered species list a report is typeset against.
type SpeciesList interface {
	Species() []domain.Species
	Lookup(name string) (domain.Species, bool)
}

// entry is one species with all its sightings, in input order.
type entry struct {
	Species   domain.Species
	Sightings []Sighting
}

// resolve groups the sightings by species in list order. Names missing
// from the list are reported to log once each.
func (r *Report) resolve(list SpeciesList, log diag.Log) []entry {
	byTrivial := make(map[string][]string)
	for _, name := range r.names {
		sp, ok := list.Lookup(name)
		if !ok {
			log.Report(diag.Entry{Pos: r.seen[name], Problem: diag.Warnf("unknown species: %s", name)})
			continue
		}
		byTrivial[sp.Trivial] = append(byTrivial[sp.Trivial], name)
	}

	var out []entry
	done := make(map[string]bool)
	for _, sp := range list.Species() {
		names, ok := byTrivial[sp.Trivial]
		if !ok || done[sp.Trivial] {
			continue
		}
		done[sp.Trivial] = true

		e := entry{Species: sp}
		for _, p := range r.Places {
			for _, name := range names {
				if p.Contains(name) {
					e.Sightings = append(e.Sightings, Sighting{Place: p, Comment: p.Plants[name]})
					break
				}
			}
		}
		out = append(out, e)
	}
	return out
}
