// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"dnadiff-core/base"
	"dnadiff-core/chromosome"
)

// MinTrailingChunk is the smallest chunk, in bytes, that can hold two
// telomere repeats, which the trailing region check needs within one read.
var MinTrailingChunk = (2*len(chromosome.Telomere) + base.PerByte - 1) / base.PerByte

// EffectiveThreads maps 0 (or less) to all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateChunkSize returns warnings for a chunk size that the comparer
// accepts but that limits what it can detect.
func ValidateChunkSize(chunkSize int) []string {
	var warns []string
	if chunkSize < MinTrailingChunk {
		warns = append(warns, fmt.Sprintf(
			"--chunk-size %d is below %d bytes; a trailing telomere region is only found when a chunk ends on a partial repeat",
			chunkSize, MinTrailingChunk))
	}
	return warns
}

// ClampThreads keeps the pool no larger than the number of chromosomes.
func ClampThreads(threads, chromosomes int) int {
	if chromosomes > 0 && threads > chromosomes {
		return chromosomes
	}
	return threads
}
