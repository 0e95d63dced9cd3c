// Command groblad-fv reads groblad record files and writes the records in
// canonical form, as tab-separated values for import, as a key/value
// dump for checking, or as JSON lines. Problems in the input are printed
// to stderr as they are found.
//
// Usage:
//
//	groblad-fv [--tsv | --debug | --json] [--no-header] [--latin1]
//	           [--species file] [--metrics-file file] [file ...]
//	groblad-fv --template
//	groblad-fv --version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/adapter/output"
	"github.com/groblad/groblad/internal/adapter/taxa"
	"github.com/groblad/groblad/internal/config"
	"github.com/groblad/groblad/internal/diag"
	"github.com/groblad/groblad/internal/domain"
	"github.com/groblad/groblad/internal/observability"
	"github.com/groblad/groblad/internal/pipeline"
)

const prog = "groblad-fv"

var version = "1.0"

const usage = `usage: groblad-fv [--tsv | --debug | --json] [--no-header] [--latin1]
                  [--species file] [--metrics-file file] [file ...]
       groblad-fv --template
       groblad-fv --version
`

// sink is an output sink that buffers.
type sink interface {
	domain.Sink
	Flush() error
}

type cli struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
}

func main() {
	c := &cli{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		metrics:  observability.NewMetrics(),
		gatherer: prometheus.DefaultGatherer,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := c.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

type options struct {
	tsv, debug, json bool
	noHeader         bool
	latin1           bool
	template         bool
	version          bool
	species          string
	metricsFile      string
	files            []string
}

func (c *cli) parse(args []string, cfg *config.Config) (*options, error) {
	var o options
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVar(&o.tsv, "tsv", false, "write tab-separated values (default)")
	fs.BoolVar(&o.debug, "debug", false, "write a key/value dump")
	fs.BoolVar(&o.json, "json", false, "write one JSON object per record")
	fs.BoolVar(&o.noHeader, "no-header", false, "omit the header row in tsv mode")
	fs.BoolVar(&o.latin1, "latin1", cfg.Latin1(), "decode input as ISO 8859-1")
	fs.BoolVar(&o.template, "template", false, "print an empty record and exit")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.StringVar(&o.species, "species", "", "check species names against this list")
	fs.StringVar(&o.metricsFile, "metrics-file", cfg.MetricsFile, "write run metrics to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.files = fs.Args()

	modes := 0
	for _, set := range []bool{o.tsv, o.debug, o.json} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return nil, errors.New("only one of --tsv, --debug and --json may be given")
	}
	return &o, nil
}

func (c *cli) run(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(c.stderr, "%s: %v\n", prog, err)
		return 1
	}

	o, err := c.parse(args, cfg)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(c.stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "%s: %v\n", prog, err)
		fmt.Fprint(c.stderr, usage)
		return 1
	}

	switch {
	case o.version:
		fmt.Fprintf(c.stdout, "%s %s\n", prog, version)
		return 0
	case o.template:
		if err := domain.WriteTemplate(c.stdout); err != nil {
			fmt.Fprintf(c.stderr, "%s: %v\n", prog, err)
			return 1
		}
		return 0
	}

	logger := observability.NewLogger(cfg, c.stderr)

	vocab := domain.NewVocabulary()
	if o.species != "" {
		list, err := taxa.Load(o.species)
		if err != nil {
			fmt.Fprintf(c.stderr, "%s: %v\n", prog, err)
			return 1
		}
		logger.Debug("species list loaded", "path", o.species, "species", list.Len())
		vocab.Taxa = list
	}

	var out sink
	switch {
	case o.debug:
		out = output.NewKeyValue(c.stdout)
	case o.json:
		out = output.NewJSONLines(c.stdout)
	default:
		out = output.NewTSV(c.stdout, !o.noHeader)
	}

	readerOpts := []lines.Option{
		lines.WithLogger(logger),
		lines.WithOpenFunc(func(string) { c.metrics.FilesRead.Inc() }),
	}
	if o.latin1 {
		readerOpts = append(readerOpts, lines.WithLatin1())
	}
	reader := lines.Open(o.files, c.stdin, readerOpts...)
	defer reader.Close()

	p := pipeline.New(reader, vocab, out, diag.NewStreamLog(c.stderr), logger, c.metrics)
	runErr := p.Run(ctx)
	flushErr := out.Flush()

	if o.metricsFile != "" {
		if err := observability.WriteTextfile(o.metricsFile, c.gatherer); err != nil {
			logger.Error("metrics not written", "error", err)
		}
	}

	if err := errors.Join(runErr, flushErr); err != nil {
		fmt.Fprintf(c.stderr, "%s: %v\n", prog, err)
		return 1
	}
	return 0
}
