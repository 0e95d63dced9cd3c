package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groblad/groblad/internal/domain"
)

func dumpAll(t *testing.T, s domain.Sink, blocks ...[][2]string) {
	t.Helper()
	rec := domain.NewRecord(domain.NewVocabulary())
	for _, block := range blocks {
		rec.Reset()
		for _, kv := range block {
			rec.Append(kv[0], kv[1])
		}
		_, err := rec.Dump(s)
		require.NoError(t, err)
	}
}

var (
	lactuca = [][2]string{
		{"artnamn", "Lactuca serriola"},
		{"koordinat", "6600000 1600000"},
		{"startdatum", "2024-07-01"},
		{"kommentar", "vid\tvägen"},
		{"kommentar", "rikligt"},
	}
	sonchus = [][2]string{
		{"artnamn", "Sonchus arvensis"},
		{"nordkoordinat", "6601234"},
		{"ostkoordinat", "1601234"},
		{"noggrannhet", "10 m"},
		{"startdatum", "2024-07-02"},
	}
)

func TestKeyValue(t *testing.T) {
	var buf bytes.Buffer
	s := NewKeyValue(&buf)
	dumpAll(t, s, lactuca, sonchus)
	require.NoError(t, s.Flush())

	want := strings.Join([]string{
		"artnamn             : Lactuca serriola",
		"nordkoordinat       : 6600000",
		"ostkoordinat        : 1600000",
		"noggrannhet         : 5 m",
		"startdatum          : 2024-07-01",
		"slutdatum           : 2024-07-01",
		"kommentar           : vid\tvägen",
		"kommentar           : rikligt",
		"",
		"artnamn             : Sonchus arvensis",
		"nordkoordinat       : 6601234",
		"ostkoordinat        : 1601234",
		"noggrannhet         : 10 m",
		"startdatum          : 2024-07-02",
		"slutdatum           : 2024-07-02",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestKeyValue_RejectsRows(t *testing.T) {
	s := NewKeyValue(&bytes.Buffer{})
	assert.True(t, s.ByField())
	assert.Error(t, s.WriteRow([]string{"x"}))
}

func TestTSV(t *testing.T) {
	tests := []struct {
		name   string
		header bool
	}{
		{name: "with header", header: true},
		{name: "without header", header: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewTSV(&buf, tt.header)
			dumpAll(t, s, lactuca, sonchus)
			require.NoError(t, s.Flush())

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if tt.header {
				require.Len(t, lines, 3)
				assert.Equal(t, strings.Join(domain.OfficialNames(), "\t"), lines[0])
				lines = lines[1:]
			}
			require.Len(t, lines, 2)

			n := len(domain.OfficialNames())
			for _, l := range lines {
				assert.Len(t, strings.Split(l, "\t"), n, "every row has one column per field")
			}

			first := strings.Split(lines[0], "\t")
			assert.Equal(t, "Lactuca serriola", first[0])
			assert.Equal(t, "", first[1], "lokalnamn is empty")
			assert.Equal(t, "6600000", first[2])
			assert.Equal(t, "5 m", first[4])
			assert.Contains(t, first, "vid vägen; rikligt")
		})
	}
}

func TestTSV_HeaderOnlyWithRows(t *testing.T) {
	var buf bytes.Buffer
	s := NewTSV(&buf, true)
	require.NoError(t, s.Flush())
	assert.Empty(t, buf.String(), "no header without records")
}

func TestTSV_SanitisesCells(t *testing.T) {
	var buf bytes.Buffer
	s := NewTSV(&buf, false)
	require.NoError(t, s.WriteRow([]string{"a\tb", "c\nd", "e"}))
	require.NoError(t, s.Flush())
	assert.Equal(t, "a b\tc d\te\n", buf.String())

	assert.False(t, s.ByField())
	assert.Error(t, s.WriteField(domain.SpeciesName, "x"))
	assert.Error(t, s.EndRecord())
}

func TestJSONLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLines(&buf)
	dumpAll(t, s, lactuca, sonchus)
	require.NoError(t, s.Flush())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Lactuca serriola", first["artnamn"])
	assert.Equal(t, "5 m", first["noggrannhet"])
	assert.Equal(t, []any{"vid\tvägen", "rikligt"}, first["kommentar"])
	assert.NotContains(t, first, "lokalnamn")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "10 m", second["noggrannhet"])
	assert.NotContains(t, second, "kommentar")

	assert.Error(t, s.WriteRow(nil))
}
