// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"dnadiff-core/base"
	"dnadiff-core/chromosome"
	"dnadiff-core/organism"
)

// Config controls the comparison pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	All     bool // compare the sex chromosome even when the sexes differ
	Log     logrus.FieldLogger
}

// ForEachComparison compares chromosome i of a with chromosome i of b for
// every shared index and calls visit once per result, from a single
// goroutine, in completion order. It returns the first error from visit or
// a worker, or ctx.Err() when cancelled. visit is never called after
// ForEachComparison returns.
func ForEachComparison(
	ctx context.Context,
	cfg Config,
	a, b *organism.Organism,
	visit func(chromosome.Comparison) error,
) error {
	if a.Chromosomes() != b.Chromosomes() {
		return fmt.Errorf("pipeline: %w: %d vs %d", organism.ErrChromosomeCount, a.Chromosomes(), b.Chromosomes())
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	log := cfg.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	n := a.Chromosomes()
	if !cfg.All && !a.IsSameSexAs(b) {
		n = a.Comparable(b)
		log.WithField("chromosome", n).Info("sex chromosomes differ; skipping")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan chromosome.Comparison, cfg.Threads*2)

	var (
		werr    error
		werrMu  sync.Mutex
		setWerr = func(err error) {
			werrMu.Lock()
			if werr == nil {
				werr = err
				cancel()
			}
			werrMu.Unlock()
		}
	)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					c, err := compareOne(log, a, b, i)
					if err != nil {
						setWerr(err)
						return
					}
					select {
					case results <- c:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector. It stops at cancellation without waiting for comparisons
	// still running; those finish in the background and are dropped.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case c, ok := <-results:
				if !ok {
					return
				}
				if err := visit(c); err != nil {
					cerr = err
					cancel()
					return
				}
			}
		}
	}()

	// Feed work
feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	go func() {
		wg.Wait()
		close(results)
	}()
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	werrMu.Lock()
	defer werrMu.Unlock()
	if werr != nil {
		return werr
	}
	return ctx.Err()
}

func compareOne(log logrus.FieldLogger, a, b *organism.Organism, i int) (chromosome.Comparison, error) {
	c1, err := a.Chromosome(i)
	if err != nil {
		return chromosome.Comparison{}, err
	}
	c2, err := b.Chromosome(i)
	if err != nil {
		return chromosome.Comparison{}, err
	}
	entry := log.WithField("chromosome", i)

	if c1.Digest() == c2.Digest() {
		entry.WithField("identical", true).Debug("chromosome compared")
		return chromosome.Unchanged(i, c1.Size()*base.PerByte), nil
	}
	cmp, err := chromosome.NewComparer(i, c1.Clone(), c2.Clone())
	if err != nil {
		return chromosome.Comparison{}, err
	}
	res := cmp.Compare()
	entry.WithFields(logrus.Fields{
		"identical": false,
		"edits":     len(res.Transformations),
		"leading":   []int{res.Leading1, res.Leading2},
		"trailing":  []int{res.Trailing1, res.Trailing2},
	}).Debug("chromosome compared")
	return res, nil
}

// CompareAll runs ForEachComparison and returns the results ordered by chromosome.
func CompareAll(ctx context.Context, cfg Config, a, b *organism.Organism) ([]chromosome.Comparison, error) {
	var out []chromosome.Comparison
	err := ForEachComparison(ctx, cfg, a, b, func(c chromosome.Comparison) error {
		out = append(out, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Chromosome < out[j].Chromosome })
	return out, nil
}
