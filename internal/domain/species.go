package domain

import "fmt"

// Species pairs the common (trivial) name with the scientific name.
type Species struct {
	Trivial string
	Latin   string
}

// String renders the species as troff text: trivial name in bold,
// scientific name in italics.
func (s Species) String() string {
	return fmt.Sprintf(`\fB%s\fP \fI%s\fP`, s.Trivial, s.Latin)
}

// Taxa looks up species by trivial or scientific name.
type Taxa interface {
	Lookup(name string) (Species, bool)
}
