// Command groblad-grep prints the "{ ... }" blocks of its input that
// match any of the given regular expressions. Text between blocks is
// always printed.
//
// Usage:
//
//	groblad-grep [-v] -e pattern ... [file ...]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/groblad/groblad/internal/config"
	"github.com/groblad/groblad/internal/observability"
	"github.com/groblad/groblad/internal/subgrep"
)

const prog = "groblad-grep"

const usage = "usage: groblad-grep [-v] -e pattern ... [file ...]\n"

// patternList collects repeated -e flags.
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ", ") }

func (p *patternList) Set(s string) error {
	*p = append(*p, s)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	invert := fs.Bool("v", false, "print the blocks that do not match")
	var exprs patternList
	fs.Var(&exprs, "e", "pattern (repeatable)")

	err = fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err == nil && len(exprs) == 0 {
		err = errors.New("no pattern specified")
	}
	var patterns []*regexp.Regexp
	if err == nil {
		patterns, err = subgrep.Compile(exprs)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		fmt.Fprint(stderr, usage)
		return 1
	}

	logger := observability.NewLogger(cfg, stderr)

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		logger.Debug("filtering", "source", name, "patterns", len(patterns), "invert", *invert)
		if err := filterFile(name, stdin, stdout, patterns, *invert); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", prog, err)
			return 1
		}
	}
	return 0
}

func filterFile(name string, stdin io.Reader, stdout io.Writer, patterns []*regexp.Regexp, invert bool) error {
	if name == "-" {
		return subgrep.Filter(stdin, stdout, patterns, invert)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := subgrep.Filter(f, stdout, patterns, invert); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
