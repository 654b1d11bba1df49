// Package genome packs FASTA chromosomes into an organism.
package genome

import (
	"context"
	"encoding/hex"
	"fmt"

	"dnadiff-core/base"
	"dnadiff-core/organism"
	"dnadiff-core/stream"

	"dnadiff/internal/fasta"
)

// Genome is an organism plus the FASTA names of its chromosomes.
type Genome struct {
	*organism.Organism
	Names []string
}

// Summary describes one packed chromosome.
type Summary struct {
	Name   string
	Bases  int    // letters after padding
	Digest string // blake2b-256, hex
}

// FromRecords packs each record as one chromosome, in file order.
// expected == 0 accepts any number of records.
func FromRecords(recs []fasta.Record, chunkSize, expected int) (*Genome, error) {
	if expected == 0 {
		expected = len(recs)
	}
	chroms := make([]*stream.Stream, len(recs))
	names := make([]string, len(recs))
	for i, r := range recs {
		s, err := stream.New(base.EncodeBytes(r.Seq), chunkSize)
		if err != nil {
			return nil, fmt.Errorf("genome: %s: %w", r.ID, err)
		}
		chroms[i] = s
		names[i] = r.ID
	}
	o, err := organism.New(chroms, expected)
	if err != nil {
		return nil, fmt.Errorf("genome: %w", err)
	}
	return &Genome{Organism: o, Names: names}, nil
}

// Load reads path with fasta.LoadRecords and packs it.
func Load(ctx context.Context, path string, chunkSize, expected int) (*Genome, error) {
	recs, err := fasta.LoadRecords(ctx, path)
	if err != nil {
		return nil, err
	}
	g, err := FromRecords(recs, chunkSize, expected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Name is the record ID of chromosome i, or its number when unnamed.
func (g *Genome) Name(i int) string {
	if i >= 0 && i < len(g.Names) && g.Names[i] != "" {
		return g.Names[i]
	}
	return fmt.Sprintf("chr%d", i+1)
}

func (g *Genome) Summaries() []Summary {
	out := make([]Summary, g.Chromosomes())
	for i := range out {
		c, _ := g.Chromosome(i)
		sum := c.Digest()
		out[i] = Summary{
			Name:   g.Name(i),
			Bases:  c.Size() * base.PerByte,
			Digest: hex.EncodeToString(sum[:]),
		}
	}
	return out
}
