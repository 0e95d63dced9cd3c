package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/groblad/groblad/internal/diag"
)

// flagMarker is what a set yes/no field is written as.
const flagMarker = "X"

// countRe splits "12 plantor" into count and unit.
var countRe = regexp.MustCompile(`^(\d+)\s*(.*)$`)

// trinity ties a controlled-list field and a free-text field to the
// combined input field that may hold either.
type trinity struct {
	list, text, combined Field
	table                func(*Vocabulary) *Synonyms
}

var trinities = []trinity{
	{list: Substrate, text: SubstrateText, combined: SubstrateAny, table: func(v *Vocabulary) *Synonyms { return v.Substrates }},
	{list: Biotope, text: BiotopeText, combined: BiotopeAny, table: func(v *Vocabulary) *Synonyms { return v.Biotopes }},
	{list: Tree, text: TreeText, combined: TreeAny, table: func(v *Vocabulary) *Synonyms { return v.Trees }},
}

type problems []diag.Problem

func (p *problems) warnf(format string, args ...any) {
	*p = append(*p, diag.Warnf(format, args...))
}

// Canonize normalises the record in place: splits count and unit,
// consolidates coordinates, normalises and defaults dates and times,
// resolves controlled vocabularies, sorts combined fields into list or
// free-text form, rewrites flags, and checks mandatory fields. It never
// fails; what it could not fix is returned. Running it twice changes
// nothing the second time.
func (r *Record) Canonize() []diag.Problem {
	var ps problems
	r.canonizeCount(&ps)
	r.canonizeCoordinate(&ps)
	r.canonizeDates(&ps)
	r.canonizeVocabulary(&ps)
	for _, t := range trinities {
		r.canonizeTrinity(t, &ps)
	}
	r.canonizeFlags()
	r.auditMandatory(&ps)
	r.canonizeSpecies(&ps)
	return ps
}

func (r *Record) canonizeCount(ps *problems) {
	if !r.Has(Unit) && r.Has(Count) {
		m := countRe.FindStringSubmatch(r.Get(Count))
		if m == nil {
			ps.warnf("%s %q is not a number", Count, r.Get(Count))
		} else {
			r.set(Count, m[1])
			if m[2] != "" {
				r.set(Unit, m[2])
			}
		}
	}

	if !r.Has(Unit) {
		return
	}
	unit := r.Get(Unit)
	if c, ok := r.vocab.Units.Lookup(unit); ok {
		r.set(Unit, c)
		return
	}
	ps.warnf("unknown unit %q", unit)
}

func (r *Record) canonizeCoordinate(ps *problems) {
	if r.Has(North) || r.Has(East) {
		if r.Has(Coordinate) {
			ps.warnf("%s ignored; %s and %s already given", Coordinate, North, East)
			r.del(Coordinate)
		}
		for _, f := range []Field{North, East} {
			if v := r.Get(f); v != "" && !isDigits(v) {
				ps.warnf("malformed %s %q; ignored", f, v)
				r.del(f)
			}
		}
		return
	}

	if r.Has(Coordinate) {
		raw := r.Get(Coordinate)
		r.del(Coordinate)
		p, ok := ParsePoint(raw)
		if !ok {
			ps.warnf("malformed coordinate %q; ignored", raw)
			return
		}
		r.set(North, strconv.Itoa(p.North))
		r.set(East, strconv.Itoa(p.East))
		if !r.Has(Precision) {
			r.set(Precision, p.Precision())
		}
		return
	}

	if !r.Has(Protected) {
		ps.warnf("no coordinate info present")
	}
}

func (r *Record) canonizeDates(ps *problems) {
	for _, f := range []Field{StartDate, EndDate} {
		if !r.Has(f) {
			continue
		}
		if d, ok := NormalizeDate(r.Get(f)); ok {
			r.set(f, d)
		} else {
			ps.warnf("malformed date %q in %s", r.Get(f), f)
		}
	}
	for _, f := range []Field{StartTime, EndTime} {
		if !r.Has(f) {
			continue
		}
		if t, ok := NormalizeTime(r.Get(f)); ok {
			r.set(f, t)
		} else {
			ps.warnf("malformed time %q in %s", r.Get(f), f)
		}
	}

	if r.Has(StartDate) && !r.Has(EndDate) {
		r.set(EndDate, r.Get(StartDate))
	}
	if r.Has(StartTime) && !r.Has(EndTime) {
		r.set(EndTime, r.Get(StartTime))
	}
}

func (r *Record) canonizeVocabulary(ps *problems) {
	pairs := []struct {
		f     Field
		table *Synonyms
	}{
		{Stage, r.vocab.Stages},
		{Precision, r.vocab.Precisions},
		{Collection, r.vocab.Collections},
	}
	for _, p := range pairs {
		if !r.Has(p.f) {
			continue
		}
		v := r.Get(p.f)
		if c, ok := p.table.Lookup(v); ok {
			r.set(p.f, c)
			continue
		}
		ps.warnf("unknown %s %q", p.f, v)
	}
}

func (r *Record) canonizeTrinity(t trinity, ps *problems) {
	table := t.table(r.vocab)

	if r.Has(t.list) {
		v := r.Get(t.list)
		if c, ok := table.Lookup(v); ok {
			r.set(t.list, c)
		} else {
			ps.warnf("unknown %s %q", t.list, v)
		}
	}

	if !r.Has(t.combined) {
		return
	}
	v := r.Get(t.combined)
	r.del(t.combined)
	if r.Has(t.list) || r.Has(t.text) {
		ps.warnf("%s takes precedence over %s and %s", t.combined, t.list, t.text)
		r.del(t.list)
		r.del(t.text)
	}
	if c, ok := table.Lookup(v); ok {
		r.set(t.list, c)
		return
	}
	r.set(t.text, v)
}

func (r *Record) canonizeFlags() {
	for _, f := range flagFields {
		if r.Get(f) != "" {
			r.set(f, flagMarker)
		} else {
			r.del(f)
		}
	}
}

func (r *Record) auditMandatory(ps *problems) {
	mandatory := []Field{SpeciesName, StartDate, EndDate}
	if !r.Has(Protected) {
		mandatory = append(mandatory, North, East, Precision)
	}
	for _, f := range mandatory {
		if !r.Has(f) {
			ps.warnf("missing mandatory field %q", f)
		}
	}
}

func (r *Record) canonizeSpecies(ps *problems) {
	if r.vocab.Taxa == nil || !r.Has(SpeciesName) {
		return
	}
	name := r.Get(SpeciesName)
	if sp, ok := r.vocab.Taxa.Lookup(name); ok {
		r.set(SpeciesName, sp.Trivial)
		return
	}
	ps.warnf("unknown species %q", name)
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
