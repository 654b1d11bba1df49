// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"dnadiff/internal/output"
)

// Job is what a registered format receives: the stream of comparisons and
// the presentation switches.
type Job struct {
	In     <-chan output.Labeled
	Sort   bool
	Header bool
}

// ComparisonWriters maps a format name to its handler. Handlers must drain
// Job.In even after a write error.
var ComparisonWriters = map[string]func(w io.Writer, job Job) error{}

// RegisterComparison adds or replaces a format (last wins).
func RegisterComparison(format string, fn func(io.Writer, Job) error) {
	ComparisonWriters[format] = fn
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ComparisonWriters))
	for f := range ComparisonWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func writeComparison(format string, w io.Writer, job Job) error {
	fn, ok := ComparisonWriters[format]
	if !ok {
		for range job.In {
		}
		return fmt.Errorf("unknown comparison format %q (no writer registered)", format)
	}
	return fn(w, job)
}
