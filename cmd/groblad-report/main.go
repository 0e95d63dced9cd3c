// Command groblad-report typesets place/plant block files as a species
// list for troff(1): each species from the species list that was seen,
// followed by the places it was seen at.
//
// Usage:
//
//	groblad-report [--ms | --tbl] [--species file] [file ...]
//	groblad-report | groff -ms -Tutf8
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/adapter/taxa"
	"github.com/groblad/groblad/internal/config"
	"github.com/groblad/groblad/internal/diag"
	"github.com/groblad/groblad/internal/observability"
	"github.com/groblad/groblad/internal/report"
)

const prog = "groblad-report"

const usage = "usage: groblad-report [--ms | --tbl] [--species file] [file ...]\n"

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
	ms := fs.Bool("ms", false, "ms macro layout (default)")
	tbl := fs.Bool("tbl", false, "tbl table layout")
	species := fs.String("species", cfg.SpeciesFile, "species list")

	err = fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err == nil && *ms && *tbl {
		err = errors.New("only one of --ms and --tbl may be given")
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		fmt.Fprint(stderr, usage)
		return 1
	}

	logger := observability.NewLogger(cfg, stderr)

	list, err := taxa.Load(*species)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	logger.Debug("species list loaded", "path", *species, "species", list.Len())

	opts := []lines.Option{lines.WithLogger(logger)}
	if cfg.Latin1() {
		opts = append(opts, lines.WithLatin1())
	}
	reader := lines.Open(fs.Args(), stdin, opts...)
	defer reader.Close()

	log := diag.NewStreamLog(stderr)
	rep, err := report.Parse(reader, log)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	layout := report.MS
	if *tbl {
		layout = report.Tbl
	}
	if err := rep.Write(stdout, layout, list, log); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	logger.Info("report written", "places", len(rep.Places), "layout", layout.String(),
		"warnings", log.Count(diag.Warning), "errors", log.Count(diag.Error))
	return 0
}
