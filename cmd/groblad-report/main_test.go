package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blocks = `{
place: Fiby urskog
date: 2024-06-14
}{
Vårlök :x: rikligt
Maskros :x:
}
`

func speciesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species")
	require.NoError(t, os.WriteFile(path, []byte("Vårlök (Gagea lutea)\n"), 0o600))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "ms", args: nil, want: ".XP\n"},
		{name: "explicit ms", args: []string{"--ms"}, want: ".XP\n"},
		{name: "tbl", args: []string{"--tbl"}, want: ".TS\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"--species", speciesFile(t)}, tt.args...)
			code := run(args, strings.NewReader(blocks), &stdout, &stderr)

			require.Equal(t, 0, code, stderr.String())
			assert.True(t, strings.HasPrefix(stdout.String(), tt.want), stdout.String())
			assert.Contains(t, stdout.String(), "rikligt")
			assert.Equal(t, "<stdin>:6: warning: unknown species: Maskros\n", stderr.String())
		})
	}
}

func TestRun_SpeciesFromEnv(t *testing.T) {
	t.Setenv("GROBLAD_SPECIES", speciesFile(t))

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(blocks), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `\fBVårlök\fP \fIGagea lutea\fP:`)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "both layouts", args: []string{"--ms", "--tbl"}, want: "only one of"},
		{name: "no species list", args: []string{"--species", "/nonexistent/species"}, want: "open species list"},
		{name: "missing input", args: []string{"/nonexistent/excursion"}, want: "open /nonexistent/excursion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.name == "missing input" {
				args = append([]string{"--species", speciesFile(t)}, args...)
			}
			var stdout, stderr bytes.Buffer
			code := run(args, strings.NewReader(""), &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, nil, &stdout, &stderr))
	assert.Equal(t, usage, stdout.String())
}
