package taxa

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groblad/groblad/internal/domain"
)

const sample = `# flora
Vårlök (Gagea lutea)
Gullviva   (Primula veris)
not a species line
Kärrviol (Viola palustris) var.
`

func TestParse(t *testing.T) {
	l, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []domain.Species{
		{Trivial: "Vårlök", Latin: "Gagea lutea"},
		{Trivial: "Gullviva", Latin: "Primula veris"},
		{Trivial: "Kärrviol", Latin: "Viola palustris"},
	}, l.Species())
	assert.Equal(t, 3, l.Len())
}

func TestLookup(t *testing.T) {
	l, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{name: "trivial", input: "Gullviva", want: "Gullviva", found: true},
		{name: "latin", input: "Primula veris", want: "Gullviva", found: true},
		{name: "case and swedish letters", input: "VÅRLÖK", want: "Vårlök", found: true},
		{name: "extra whitespace", input: " viola   palustris ", want: "Kärrviol", found: true},
		{name: "unknown", input: "Maskros", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, ok := l.Lookup(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, sp.Trivial)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList_IsTaxa(t *testing.T) {
	var taxa domain.Taxa = New(domain.Species{Trivial: "Gullviva", Latin: "Primula veris"})

	v := domain.NewVocabulary()
	v.Taxa = taxa
	rec := domain.NewRecord(v)
	rec.Append("artnamn", "primula veris")
	rec.Canonize()
	assert.Equal(t, "Gullviva", rec.Get(domain.SpeciesName))
}
