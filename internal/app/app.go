// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"dnadiff-core/chromosome"

	"dnadiff/internal/cli"
	"dnadiff/internal/cmdutil"
	"dnadiff/internal/genome"
	"dnadiff/internal/output"
	"dnadiff/internal/pipeline"
	"dnadiff/internal/runutil"
	"dnadiff/internal/version"
	"dnadiff/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// RunContext runs the dnadiff command line and returns its exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("dnadiff")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnadiff version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	log, err := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	for _, w := range runutil.ValidateChunkSize(opts.ChunkSize) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	g1, err := genome.Load(parent, opts.First, opts.ChunkSize, opts.Chromosomes)
	if err != nil {
		return failed(parent, stderr, err, ExitUsage)
	}
	g2, err := genome.Load(parent, opts.Second, opts.ChunkSize, opts.Chromosomes)
	if err != nil {
		return failed(parent, stderr, err, ExitUsage)
	}
	if g1.Chromosomes() != g2.Chromosomes() {
		_, _ = fmt.Fprintf(stderr, "genomes differ in chromosome count: %d vs %d\n", g1.Chromosomes(), g2.Chromosomes())
		return ExitUsage
	}
	logSummaries(log, opts.First, g1)
	logSummaries(log, opts.Second, g2)

	threads := runutil.ClampThreads(runutil.EffectiveThreads(opts.Threads), g1.Chromosomes())
	in, done := writers.StartComparisonWriter(outw, opts.Output, opts.Sort, opts.Header, threads*2)

	var chroms, edits int
	cfg := pipeline.Config{Threads: threads, All: opts.All, Log: log}
	err = pipeline.ForEachComparison(parent, cfg, g1.Organism, g2.Organism, func(c chromosome.Comparison) error {
		chroms++
		edits += len(c.Transformations)
		in <- output.Labeled{Name: g1.Name(c.Chromosome), Comparison: c}
		return nil
	})
	close(in)
	werr := <-done

	if err != nil {
		_ = outw.Flush()
		return failed(parent, stderr, err, ExitRuntime)
	}
	if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	log.WithFields(logrus.Fields{"chromosomes": chroms, "edits": edits}).Info("comparison finished")
	return flush(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func logSummaries(log *logrus.Logger, path string, g *genome.Genome) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for i, s := range g.Summaries() {
		log.WithFields(logrus.Fields{
			"genome": path, "chromosome": i, "name": s.Name, "bases": s.Bases, "blake2b": s.Digest,
		}).Debug("loaded chromosome")
	}
}

// flush writes out buffered stdout; a closed pipe downstream is not a failure.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	return code
}

func failed(ctx context.Context, stderr io.Writer, err error, code int) int {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return ExitCancelled
	}
	_, _ = fmt.Fprintln(stderr, err)
	return code
}
