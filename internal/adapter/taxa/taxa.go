// Package taxa loads the species list: one "Trivial name (Latin name)"
// per line, in the order species should be reported.
package taxa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/groblad/groblad/internal/domain"
)

var lineRe = regexp.MustCompile(`^(.+?)\s*\((.+)\)`)

// List is an ordered species list. It satisfies domain.Taxa.
type List struct {
	species []domain.Species
	byName  *domain.Synonyms
	index   map[string]int
}

// Parse reads a species list. Lines that do not look like
// "Trivial (Latin)" are skipped.
func Parse(r io.Reader) (*List, error) {
	var species []domain.Species
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m := lineRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		species = append(species, domain.Species{Trivial: m[1], Latin: m[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read species list: %w", err)
	}
	return New(species...), nil
}

// Load reads the species list at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open species list: %w", err)
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// New builds a list from species in report order. A name listed twice
// refers to its first entry.
func New(species ...domain.Species) *List {
	groups := make([][]string, 0, len(species))
	index := make(map[string]int, len(species))
	for i, sp := range species {
		groups = append(groups, []string{sp.Trivial, sp.Latin})
		if _, ok := index[sp.Trivial]; !ok {
			index[sp.Trivial] = i
		}
	}
	return &List{species: species, byName: domain.NewSynonyms(groups...), index: index}
}

// Lookup finds a species by trivial or Latin name, ignoring case.
func (l *List) Lookup(name string) (domain.Species, bool) {
	trivial, ok := l.byName.Lookup(name)
	if !ok {
		return domain.Species{}, false
	}
	return l.species[l.index[trivial]], true
}

// Species returns the list in file order.
func (l *List) Species() []domain.Species {
	return append([]domain.Species(nil), l.species...)
}

// Len is the number of species in the list.
func (l *List) Len() int {
	return len(l.species)
}
