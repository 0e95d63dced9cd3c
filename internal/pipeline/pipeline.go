package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/groblad/groblad/internal/adapter/lines"
	"github.com/groblad/groblad/internal/diag"
	"github.com/groblad/groblad/internal/domain"
	"github.com/groblad/groblad/internal/observability"
)

// LineSource produces logical input lines, io.EOF after the last one.
type LineSource interface {
	Next() (lines.Line, error)
}

// Stats summarises a run.
type Stats struct {
	Lines    int
	Records  int
	Empty    int
	Warnings int
	Errors   int
}

// Pipeline reads record blocks from a LineSource, canonicalises each one
// and writes it to a Sink. Problems go to the diagnostic log; only I/O
// failures stop the run.
type Pipeline struct {
	source  LineSource
	sink    domain.Sink
	record  *domain.Record
	diag    diag.Log
	logger  *slog.Logger
	metrics *observability.Metrics

	// start is where the current record's first line was; started is
	// false between records.
	start   diag.Position
	started bool
	stats   Stats
}

// New creates a Pipeline with the given source, sink and observability.
func New(src LineSource, vocab *domain.Vocabulary, sink domain.Sink, log diag.Log, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:  src,
		sink:    sink,
		record:  domain.NewRecord(vocab),
		diag:    log,
		logger:  logger,
		metrics: metrics,
	}
}

// Run processes the whole input. It returns nil at end of input, the
// source or sink error that stopped it, or the context error if ctx was
// cancelled between lines.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Debug("pipeline started")
	begin := time.Now()
	defer func() {
		p.metrics.RunDuration.Observe(time.Since(begin).Seconds())
	}()

	for {
		if err := ctx.Err(); err != nil {
			p.logger.Info("pipeline stopping", "reason", err)
			return err
		}

		l, err := p.source.Next()
		if errors.Is(err, io.EOF) {
			if err := p.flush(); err != nil {
				return err
			}
			p.logger.Info("pipeline finished",
				"lines", p.stats.Lines,
				"records", p.stats.Records,
				"empty", p.stats.Empty,
				"warnings", p.stats.Warnings,
				"errors", p.stats.Errors,
			)
			return nil
		}
		if err != nil {
			return err
		}

		p.stats.Lines++
		p.metrics.LinesRead.Inc()
		if err := p.handle(l); err != nil {
			return err
		}
	}
}

// Stats returns the counts so far.
func (p *Pipeline) Stats() Stats {
	return p.stats
}

// flush dumps the current record, if any line belonged to it.
func (p *Pipeline) flush() error {
	if !p.started {
		return nil
	}
	defer func() {
		p.record.Reset()
		p.started = false
	}()

	if p.record.Empty() {
		p.stats.Empty++
		p.metrics.RecordsEmpty.Inc()
		return nil
	}

	problems, err := p.record.Dump(p.sink)
	p.report(p.start, problems)
	if err != nil {
		return fmt.Errorf("write record from %s: %w", p.start, err)
	}
	p.stats.Records++
	p.metrics.RecordsEmitted.Inc()
	return nil
}

func (p *Pipeline) report(pos diag.Position, problems []diag.Problem) {
	for _, pr := range problems {
		switch pr.Severity {
		case diag.Error:
			p.stats.Errors++
		default:
			p.stats.Warnings++
		}
		p.metrics.Problems.WithLabelValues(pr.Severity.String()).Inc()
	}
	diag.ReportAll(p.diag, pos, problems)
}
