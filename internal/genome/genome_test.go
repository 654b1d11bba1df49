package genome

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnadiff-core/organism"
	"dnadiff-core/stream"

	"dnadiff/internal/fasta"
)

func TestFromRecords(t *testing.T) {
	recs := []fasta.Record{
		{ID: "chr1", Seq: []byte("CACGTAACGCAT")},
		{ID: "", Seq: []byte("ACG")},
	}
	g, err := FromRecords(recs, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Chromosomes())
	assert.Equal(t, "chr1", g.Name(0))
	assert.Equal(t, "chr2", g.Name(1))

	c, err := g.Chromosome(1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 4, c.ChunkSize())

	sums := g.Summaries()
	require.Len(t, sums, 2)
	assert.Equal(t, 12, sums[0].Bases)
	assert.Equal(t, 4, sums[1].Bases)
	assert.Len(t, sums[0].Digest, 64)
	assert.NotEqual(t, sums[0].Digest, sums[1].Digest)
}

func TestFromRecordsErrors(t *testing.T) {
	recs := []fasta.Record{{ID: "chr1", Seq: []byte("ACGT")}}
	_, err := FromRecords(recs, 4, organism.DefaultChromosomes)
	assert.ErrorIs(t, err, organism.ErrChromosomeCount)

	_, err = FromRecords(recs, 0, 1)
	assert.ErrorIs(t, err, stream.ErrInvalidChunkSize)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "g.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">a\nACGT\n>b\nTTAGGG\n"), 0o644))

	g, err := Load(context.Background(), fn, stream.DefaultChunkSize, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Names)

	_, err = Load(context.Background(), fn, stream.DefaultChunkSize, 3)
	assert.ErrorIs(t, err, organism.ErrChromosomeCount)
}
