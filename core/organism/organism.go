// Package organism holds the chromosomes of one individual and compares
// them pairwise against another's.
package organism

import (
	"errors"
	"fmt"
	"sync"

	"dnadiff-core/chromosome"
	"dnadiff-core/stream"
)

// DefaultChromosomes is the human haploid set: 22 autosomes and one sex chromosome.
const DefaultChromosomes = 23

// MaleMaximumLength is the largest packed sex chromosome, in bytes, taken
// to be a Y chromosome. Y runs around 57 million base pairs and X around
// 156 million.
const MaleMaximumLength = 100 * 1000 * 1000

var (
	ErrChromosomeCount = errors.New("chromosome data does not match expected size")
	ErrChromosomeIndex = errors.New("index is out of range for the number of chromosomes available")
)

type Organism struct {
	chroms []*stream.Stream
}

// New keeps a clone of each stream. The last stream is the sex chromosome.
func New(chroms []*stream.Stream, expected int) (*Organism, error) {
	if len(chroms) != expected || len(chroms) == 0 {
		return nil, fmt.Errorf("organism: %w: got %d, want %d", ErrChromosomeCount, len(chroms), expected)
	}
	o := &Organism{chroms: make([]*stream.Stream, len(chroms))}
	for i, c := range chroms {
		if c == nil {
			return nil, fmt.Errorf("organism: chromosome %d is nil", i)
		}
		o.chroms[i] = c.Clone()
	}
	return o, nil
}

// Chromosome returns stream i. Callers that read from it should Clone it first.
func (o *Organism) Chromosome(i int) (*stream.Stream, error) {
	if i < 0 || i >= len(o.chroms) {
		return nil, fmt.Errorf("organism: chromosome %d of %d: %w", i, len(o.chroms), ErrChromosomeIndex)
	}
	return o.chroms[i], nil
}

func (o *Organism) Chromosomes() int { return len(o.chroms) }

// IsMale reports whether c is short enough to be a Y chromosome.
func IsMale(c *stream.Stream) bool {
	return c.Size() <= MaleMaximumLength
}

// IsSameSexAs compares the sex chromosomes of o and other by length.
func (o *Organism) IsSameSexAs(other *Organism) bool {
	return IsMale(o.chroms[len(o.chroms)-1]) == IsMale(other.chroms[len(other.chroms)-1])
}

// Comparable is how many chromosomes o and other share for comparison:
// all of them for the same sex, all but the sex chromosome otherwise.
func (o *Organism) Comparable(other *Organism) int {
	if o.IsSameSexAs(other) {
		return len(o.chroms)
	}
	return len(o.chroms) - 1
}

// Compare diffs each comparable chromosome pair in its own goroutine and
// returns the results ordered by chromosome. Both organisms are left as
// they were and may be compared again.
func (o *Organism) Compare(other *Organism) ([]chromosome.Comparison, error) {
	if len(o.chroms) != len(other.chroms) {
		return nil, fmt.Errorf("organism: %w: %d vs %d", ErrChromosomeCount, len(o.chroms), len(other.chroms))
	}
	n := o.Comparable(other)
	out := make([]chromosome.Comparison, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			c, err := chromosome.NewComparer(i, o.chroms[i].Clone(), other.chroms[i].Clone())
			if err != nil {
				errs[i] = err
				return
			}
			out[i] = c.Compare()
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
