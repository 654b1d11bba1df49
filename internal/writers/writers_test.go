package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnadiff-core/chromosome"
	"dnadiff-core/edit"

	"dnadiff/internal/output"
	"dnadiff/pkg/api"
)

func labeled(n int) output.Labeled {
	return output.Labeled{Name: "chr", Comparison: chromosome.Comparison{
		Chromosome:      n,
		Transformations: []edit.Transformation{{Index: n, Kind: edit.Insertion, Text: "A"}},
	}}
}

func run(t *testing.T, w io.Writer, format string, sort bool, items ...output.Labeled) error {
	t.Helper()
	in, done := StartComparisonWriter(w, format, sort, true, 1)
	for _, l := range items {
		in <- l
	}
	close(in)
	return <-done
}

func TestUnknownComparisonFormatError(t *testing.T) {
	var b bytes.Buffer
	err := run(t, &b, "nope-format", false, labeled(0), labeled(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown comparison format")
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text"}, Formats())
}

func TestTextSorted(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run(t, &b, "text", true, labeled(2), labeled(0), labeled(1)))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, output.TSVHeader, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0\t"))
	assert.True(t, strings.HasPrefix(lines[3], "2\t"))
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run(t, &b, "json", true, labeled(1), labeled(0)))
	var got []api.ComparisonV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Chromosome)
	assert.Equal(t, "insertion", got[0].Transformations[0].Kind)
}

func TestJSONL(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run(t, &b, "jsonl", false, labeled(3), labeled(1)))
	sc := bufio.NewScanner(&b)
	var chroms []int
	for sc.Scan() {
		var v api.ComparisonV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		chroms = append(chroms, v.Chromosome)
	}
	assert.Equal(t, []int{3, 1}, chroms)
}

type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestBrokenPipeIsNotAnError(t *testing.T) {
	for _, f := range Formats() {
		assert.NoError(t, run(t, closedPipe{}, f, false, labeled(0), labeled(1)), f)
	}
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
}
