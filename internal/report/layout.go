package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/groblad/groblad/internal/diag"
)

// Layout selects the troff(1) macro set the report is written for.
type Layout int

const (
	// MS writes one hanging paragraph per species for the ms macros.
	MS Layout = iota
	// Tbl writes one table row per sighting for tbl(1).
	Tbl
)

func (l Layout) String() string {
	switch l {
	case MS:
		return "ms"
	case Tbl:
		return "tbl"
	default:
		return "unknown"
	}
}

// tblEscaper keeps cell text from ending a tbl cell early.
var tblEscaper = strings.NewReplacer("@", `\(at`, "\n", " ")

// Write typesets the report in layout l. Species are written in list
// order; names seen in the input but missing from the list are reported
// to log.
func (r *Report) Write(w io.Writer, l Layout, list SpeciesList, log diag.Log) error {
	entries := r.resolve(list, log)
	bw := bufio.NewWriter(w)
	switch l {
	case Tbl:
		writeTbl(bw, entries)
	default:
		writeMS(bw, entries)
	}
	return bw.Flush()
}

func writeMS(w *bufio.Writer, entries []entry) {
	for _, e := range entries {
		w.WriteString(".XP\n")
		fmt.Fprintf(w, "%s:\n", e.Species)

		paras := make([]string, 0, len(e.Sightings))
		for _, s := range e.Sightings {
			paras = append(paras, msSighting(s))
		}
		w.WriteString(strings.Join(paras, "\n\\(em\n"))
		w.WriteString("\n.\n")
	}
}

func msSighting(s Sighting) string {
	p := s.Place
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Coordinate != nil {
		fmt.Fprintf(&b, "\n(%s).", p.Coordinate.Troff(false))
	} else {
		b.WriteString(".")
	}
	if p.Date != "" && p.Observers != "" {
		fmt.Fprintf(&b, "\n%s %s.", p.Observers, p.Date)
	}
	if s.Comment != "" {
		b.WriteString("\n" + s.Comment)
	}
	out := b.String()
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}

func writeTbl(w *bufio.Writer, entries []entry) {
	w.WriteString(".TS\n")
	w.WriteString("tab(@);\n")
	w.WriteString("lb l l l l.\n")
	for _, e := range entries {
		for i, s := range e.Sightings {
			name := ""
			if i == 0 {
				name = e.Species.Trivial
			}
			coord := ""
			if s.Place.Coordinate != nil {
				coord = s.Place.Coordinate.Troff(true)
			}
			cells := []string{name, s.Place.Name, coord, s.Place.Date, s.Comment}
			for j, c := range cells {
				cells[j] = tblEscaper.Replace(c)
			}
			w.WriteString(strings.Join(cells, "@"))
			w.WriteString("\n")
		}
	}
	w.WriteString(".TE\n")
}
