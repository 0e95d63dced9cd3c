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

const input = "{\nVårlök :x:\n}\n{\nKärrviol :x:\n}\n"

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "match", args: []string{"-e", "Vårlök"}, want: "{\nVårlök :x:\n}\n"},
		{name: "invert", args: []string{"-v", "-e", "Vårlök"}, want: "{\nKärrviol :x:\n}\n"},
		{name: "several patterns", args: []string{"-e", "Vårlök", "-e", "Kärr"}, want: input},
		{name: "explicit stdin", args: []string{"-e", "Kärr", "-"}, want: "{\nKärrviol :x:\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(input), &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte(input), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-e", "Vårlök", a, a}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, strings.Repeat("{\nVårlök :x:\n}\n", 2), stdout.String())

	stdout.Reset()
	code = run([]string{"-e", "x", filepath.Join(dir, "missing")}, nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "groblad-grep: open ")
}

func TestRun_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no pattern", args: []string{"-v"}, want: "no pattern specified"},
		{name: "bad pattern", args: []string{"-e", "("}, want: "missing closing )"},
		{name: "unknown flag", args: []string{"-x"}, want: "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(input), &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Contains(t, stderr.String(), usage)
			assert.Empty(t, stdout.String())
		})
	}
}
