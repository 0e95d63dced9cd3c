package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Synonyms maps every spelling in a group to the group's first member.
// Matching ignores case (including å, ä, ö) and surrounding or repeated
// whitespace.
type Synonyms struct {
	m map[string]string
}

// NewSynonyms builds a table from groups of equivalent spellings. The
// first member of each group is its canonical form. When a spelling
// appears in more than one group the first group wins.
func NewSynonyms(groups ...[]string) *Synonyms {
	s := &Synonyms{m: make(map[string]string)}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		for _, alias := range g {
			k := foldKey(alias)
			if _, taken := s.m[k]; !taken {
				s.m[k] = g[0]
			}
		}
	}
	return s
}

// Lookup returns the canonical form of v, if v belongs to any group.
func (s *Synonyms) Lookup(v string) (string, bool) {
	if s == nil {
		return "", false
	}
	c, ok := s.m[foldKey(v)]
	return c, ok
}

// Resolve returns the canonical form of v, or def if v is unknown.
func (s *Synonyms) Resolve(v, def string) string {
	if c, ok := s.Lookup(v); ok {
		return c
	}
	return def
}

// Len is the number of distinct spellings known.
func (s *Synonyms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

func foldKey(v string) string {
	return cases.Fold().String(strings.Join(strings.Fields(v), " "))
}
