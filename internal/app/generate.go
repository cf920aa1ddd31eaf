package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/progress"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/server"
	"github.com/agbru/fibseq/internal/sysmon"
	"github.com/agbru/fibseq/internal/ui"
)

// progressDisplayThreshold is the term count below which no spinner is
// shown: smaller generations finish faster than a single refresh tick.
const progressDisplayThreshold = 10_000_000

// runGenerate performs a one-shot sequence generation and prints the
// result according to the configured output mode.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	// Optional Prometheus endpoint for the duration of the run.
	var promMetrics *server.Metrics
	if a.Config.ServeAddr != "" {
		promMetrics = server.NewMetrics()
		serveCtx, stopServe := context.WithCancel(ctx)
		serveDone := make(chan struct{})
		go func() {
			defer close(serveDone)
			_ = server.Serve(serveCtx, a.Config.ServeAddr, promMetrics, a.Logger)
		}()
		defer func() {
			stopServe()
			<-serveDone
		}()
	}

	if !a.Config.Quiet && a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Progress reporting: spinner for large interactive runs, debug log
	// entries when debug logging is on.
	subject := progress.NewSubject()
	var wg sync.WaitGroup
	var progressChan chan progress.Update
	if !a.Config.Quiet && a.Config.N >= progressDisplayThreshold {
		progressChan = make(chan progress.Update, 64)
		subject.Register(progress.NewChannelObserver(progressChan))
		wg.Add(1)
		go cli.DisplayProgress(&wg, progressChan, out)
	}
	if a.Config.Debug {
		subject.Register(progress.NewLoggingObserver(a.Logger))
	}

	generator := sequence.NewGenerator(subject)
	collector := metrics.NewMemoryCollector()
	memBefore := collector.Snapshot()

	if promMetrics != nil {
		promMetrics.IncrementActiveGenerations()
		defer promMetrics.DecrementActiveGenerations()
	}

	genCtx, span := otel.Tracer("fibseq").Start(ctx, "sequence.generate")
	span.SetAttributes(attribute.Int("sequence.terms", a.Config.N))

	start := time.Now()
	seq, err := generator.Generate(genCtx, a.Config.N)
	elapsed := time.Since(start)
	span.End()

	if progressChan != nil {
		close(progressChan)
		wg.Wait()
		fmt.Fprintln(out)
	}

	if err != nil {
		a.Logger.Error("generation failed", err, logging.Int("n", a.Config.N))
		return apperrors.HandleGenerationError(err, elapsed, a.ErrWriter, cli.CLIColorProvider{})
	}

	if promMetrics != nil {
		promMetrics.ObserveGeneration(len(seq), elapsed)
	}
	a.Logger.Debug("sequence generated",
		logging.Int("n", a.Config.N),
		logging.Uint64("sum", sequence.Sum(seq)),
		logging.String("duration", elapsed.String()),
	)

	if a.Config.Quiet {
		cli.DisplayQuietSequence(out, seq)
	} else {
		cli.DisplaySequence(out, seq, a.Config.Verbose)
		cli.DisplaySum(out, seq)
	}

	if a.Config.Details {
		memAfter := collector.Snapshot()
		cli.DisplayGenerationStats(out, a.Config.N, elapsed,
			metrics.Delta(memBefore, memAfter), memAfter, sysmon.Sample())
	}

	return a.exportIfRequested(seq, elapsed, out)
}

// exportIfRequested writes the sequence to the configured output file.
func (a *Application) exportIfRequested(seq []uint64, elapsed time.Duration, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.WriteSequenceToFile(seq, elapsed, outputCfg); err != nil {
		a.Logger.Error("failed to export sequence", err, logging.String("path", a.Config.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error saving sequence: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Sequence saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}
