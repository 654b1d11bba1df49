// internal/integration/integration_test.go
package integration

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnadiff-core/base"
	"dnadiff-core/edit"

	"dnadiff/internal/app"
	"dnadiff/internal/output"
	"dnadiff/pkg/api"
)

func fastaText(seqs []string) string {
	var b strings.Builder
	for i, s := range seqs {
		fmt.Fprintf(&b, ">chr%d\n", i+1)
		for len(s) > 60 {
			b.WriteString(s[:60] + "\n")
			s = s[60:]
		}
		b.WriteString(s + "\n")
	}
	return b.String()
}

func writeGz(t *testing.T, fn string, seqs []string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(fastaText(seqs)))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0o644))
	return fn
}

// mutate copies s with a handful of random point edits.
func mutate(r *rand.Rand, s string) string {
	b := []byte(s)
	for n := 0; n < 6; n++ {
		i := r.Intn(len(b))
		switch r.Intn(3) {
		case 0:
			b[i] = "ACGT"[r.Intn(4)]
		case 1:
			b = append(b[:i], b[i+1:]...)
		default:
			b = append(b[:i], append([]byte{"ACGT"[r.Intn(4)]}, b[i:]...)...)
		}
	}
	return string(b)
}

func genomes(r *rand.Rand, n, length int) (a, b []string) {
	for i := 0; i < n; i++ {
		s := make([]byte, length)
		for j := range s {
			s[j] = "ACGT"[r.Intn(4)]
		}
		a = append(a, string(s))
		b = append(b, mutate(r, string(s)))
	}
	return a, b
}

func TestEndToEndRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	seqsA, seqsB := genomes(r, 5, 700)
	dir := t.TempDir()
	fa := writeGz(t, filepath.Join(dir, "a.fa.gz"), seqsA)
	fb := writeGz(t, filepath.Join(dir, "b.fa.gz"), seqsB)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--first", fa, "--second", fb,
		"--chromosomes", "5", "--chunk-size", "16",
		"--output", "jsonl", "--sort",
	}, &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	sc := bufio.NewScanner(&out)
	n := 0
	for sc.Scan() {
		var v api.ComparisonV1
		require.NoError(t, json.Unmarshal(sc.Bytes(), &v))
		l, err := output.FromAPIComparison(v)
		require.NoError(t, err)
		require.Equal(t, n, l.Chromosome)

		p1 := base.Decode(base.Encode(seqsA[n]))
		p2 := base.Decode(base.Encode(seqsB[n]))
		got, err := edit.Apply(p1[:l.Trailing1], l.Transformations)
		require.NoError(t, err)
		assert.Equal(t, p1[:l.Leading1]+p2[l.Leading2:l.Trailing2], got, "chromosome %d", n)
		n++
	}
	assert.Equal(t, 5, n)
}

func TestParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	seqsA, seqsB := genomes(r, 8, 300)
	dir := t.TempDir()
	fa := writeGz(t, filepath.Join(dir, "a.fa.gz"), seqsA)
	fb := writeGz(t, filepath.Join(dir, "b.fa.gz"), seqsB)

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			fa, fb,
			"--chromosomes", "0",
			"--threads", fmt.Sprint(threads),
			"--output", "json", "--sort",
		}, &out, &errB)
		require.Equal(t, 0, code, errB.String())
		return out.String()
	}
	assert.Equal(t, run(1), run(4))
}
