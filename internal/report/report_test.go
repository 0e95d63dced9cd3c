package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/adapter/taxa"
	"github.com/groblad/groblad/internal/diag"
	"github.com/groblad/groblad/internal/domain"
)

const excursion = `# två lokaler
{
place: Fiby urskog
coordinate: 6642 1582
date: 2024-06-14
observers: A. Andersson
}{
Vårlök :x: rikligt
  i sluttningen
Maskros :x:
}

{
place: Fiby kärr
date: 2024-06-14
}{
Kärrviol :x:
gagea lutea :x: några få.
}
`

func testList() *taxa.List {
	return taxa.New(
		domain.Species{Trivial: "Kärrviol", Latin: "Viola palustris"},
		domain.Species{Trivial: "Vårlök", Latin: "Gagea lutea"},
		domain.Species{Trivial: "Gullviva", Latin: "Primula veris"},
	)
}

func parse(t *testing.T, input string) (*Report, *diag.Collector) {
	t.Helper()
	log := &diag.Collector{}
	r, err := Parse(lines.Open(nil, strings.NewReader(input)), log)
	require.NoError(t, err)
	return r, log
}

func TestParse(t *testing.T) {
	r, log := parse(t, excursion)
	assert.Empty(t, log.Entries)

	require.Len(t, r.Places, 2)
	first := r.Places[0]
	assert.Equal(t, "Fiby urskog", first.Name)
	require.NotNil(t, first.Coordinate)
	assert.Equal(t, domain.NewPoint(6642, 1582), *first.Coordinate)
	assert.Equal(t, "2024-06-14", first.Date)
	assert.Equal(t, "A. Andersson", first.Observers)
	assert.Equal(t, map[string]string{"Vårlök": "rikligt i sluttningen", "Maskros": ""}, first.Plants)
	assert.True(t, first.Contains("Maskros"))
	assert.False(t, first.Contains("Kärrviol"))

	second := r.Places[1]
	assert.Nil(t, second.Coordinate)
	assert.Equal(t, 13, second.Pos.Line)
	assert.Equal(t, []string{"Vårlök", "Maskros", "Kärrviol", "gagea lutea"}, r.names)
}

func TestParse_StructuralProblems(t *testing.T) {
	input := "}\n" +
		"lös text\n" +
		"{\n" +
		"place: A\n" +
		"coordinate: norr öst\n" +
		"höjd: 40 m\n" +
		"{\n" +
		"place: B\n" +
		"}{\n" +
		"inte en växt\n" +
		"}{\n"
	r, log := parse(t, input)

	var got []string
	for _, e := range log.Entries {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		`<stdin>:1: error: unexpected "}" outside a block; ignored`,
		`<stdin>:2: warning: text outside a block; ignored`,
		`<stdin>:5: warning: bad coordinate "norr öst" ignored`,
		`<stdin>:6: warning: unknown header "höjd: 40 m"`,
		`<stdin>:7: error: unexpected "{" inside a block; previous block closed`,
		`<stdin>:10: warning: malformed plant line "inte en växt"; ignored`,
		`<stdin>:11: error: unexpected "}{"; ignored`,
		`<stdin>:7: error: block is not closed`,
	}, got)

	require.Len(t, r.Places, 2)
	assert.Equal(t, "A", r.Places[0].Name)
	assert.Equal(t, "B", r.Places[1].Name)
}

func TestWrite_MS(t *testing.T) {
	r, _ := parse(t, excursion)
	log := &diag.Collector{}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, MS, testList(), log))

	want := ".XP\n" +
		`\fBKärrviol\fP \fIViola palustris\fP:` + "\n" +
		"Fiby kärr.\n" +
		".\n" +
		".XP\n" +
		`\fBVårlök\fP \fIGagea lutea\fP:` + "\n" +
		"Fiby urskog\n" +
		`(\s-266\s042 \s-215\s082).` + "\n" +
		"A. Andersson 2024-06-14.\n" +
		"rikligt i sluttningen.\n" +
		`\(em` + "\n" +
		"Fiby kärr.\n" +
		"några få.\n" +
		".\n"
	assert.Equal(t, want, buf.String())

	assert.Equal(t, []string{"unknown species: Maskros"}, log.Messages())
	assert.Equal(t, 10, log.Entries[0].Pos.Line)
}

func TestWrite_Tbl(t *testing.T) {
	r, _ := parse(t, excursion)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, Tbl, testList(), &diag.Collector{}))

	want := ".TS\n" +
		"tab(@);\n" +
		"lb l l l l.\n" +
		"Kärrviol@Fiby kärr@@2024-06-14@\n" +
		`Vårlök@Fiby urskog@\s-26642\s0 \s-21582\s0@2024-06-14@rikligt i sluttningen` + "\n" +
		"@Fiby kärr@@2024-06-14@några få.\n" +
		".TE\n"
	assert.Equal(t, want, buf.String())
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "ms", MS.String())
	assert.Equal(t, "tbl", Tbl.String())
	assert.Equal(t, "unknown", Layout(9).String())
}
