package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnadiff/pkg/api"
)

const (
	seq1 = "GGGTTAGGGTTAGGGTTAGGGTAGCGAATATATTTAGGGTTAGGGTTAGGGTTAGGG"
	seq2 = "GGGTTAGGGTTAGGGTTAGGGTAACGACTGTATTTAGGGTTAGGGTTAGGGTTA"
)

func writeGenome(t *testing.T, dir, name string, seqs ...string) string {
	t.Helper()
	var b strings.Builder
	for i, s := range seqs {
		b.WriteString(">chr")
		b.WriteString(string(rune('1' + i)))
		b.WriteString(" test\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(b.String()), 0o644))
	return fn
}

func run(argv ...string) (int, string, string) {
	var out, errb bytes.Buffer
	code := Run(argv, &out, &errb)
	return code, out.String(), errb.String()
}

func TestTextOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeGenome(t, dir, "a.fa", seq1, "CACGTAACGCAT")
	b := writeGenome(t, dir, "b.fa", seq2, "CACGTCCCGCAT")

	code, out, errs := run("--chromosomes", "2", "--sort", a, b)
	require.Equal(t, ExitOK, code, errs)
	assert.Equal(t,
		"chromosome\tname\tindex\tkind\ttext\ttext2\n"+
			"0\tchr1\t23\tsubstitution\tG\tA\n"+
			"0\tchr1\t27\tsubstitution\tA\tC\n"+
			"0\tchr1\t29\tsubstitution\tA\tG\n"+
			"1\tchr2\t5\tsubstitution\tAA\tCC\n", out)
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeGenome(t, dir, "a.fa", seq1)
	b := writeGenome(t, dir, "b.fa", seq1)

	code, out, errs := run("--first", a, "--second", b, "--chromosomes", "0", "-o", "json", "--log-level", "debug")
	require.Equal(t, ExitOK, code, errs)
	var got []api.ComparisonV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Transformations)
	assert.Equal(t, 60, got[0].Trailing1)
	assert.Contains(t, errs, "blake2b=")
	assert.Contains(t, errs, "comparison finished")
}

func TestUsageAndVersion(t *testing.T) {
	code, out, _ := run()
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Usage: dnadiff")

	code, out, _ = run("--version")
	assert.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "dnadiff version "))

	code, _, errs := run("--first", "only.fa")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errs, "two genomes are required")
}

func TestInputErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeGenome(t, dir, "a.fa", seq1, seq1)
	b := writeGenome(t, dir, "b.fa", seq1)

	code, _, errs := run(a, b)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errs, "does not match expected size")

	code, _, _ = run("--chromosomes", "0", a, b)
	assert.Equal(t, ExitUsage, code)

	code, _, _ = run(a, filepath.Join(dir, "missing.fa"))
	assert.Equal(t, ExitUsage, code)
}

func TestSmallChunkWarning(t *testing.T) {
	dir := t.TempDir()
	a := writeGenome(t, dir, "a.fa", "ACGT")

	code, _, errs := run("--chromosomes", "1", "--chunk-size", "1", a, a)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, errs, "WARN: --chunk-size 1")

	code, _, errs = run("-q", "--chromosomes", "1", "--chunk-size", "1", a, a)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, errs)
}

func TestCancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeGenome(t, dir, "a.fa", seq1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	code := RunContext(ctx, []string{"--chromosomes", "1", a, a}, &out, &errb)
	assert.Equal(t, ExitCancelled, code)
}
