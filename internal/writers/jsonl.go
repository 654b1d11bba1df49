// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"dnadiff/internal/output"
)

// Buffered writers are pooled across JSONL jobs; each is rebound to the
// job's output and reset to io.Discard afterwards.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// writeJSONL writes one v1 comparison per line, sorted when asked.
func writeJSONL(w io.Writer, job Job) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(w)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()
	enc := json.NewEncoder(bw)

	var err error
	encode := func(l output.Labeled) {
		if err == nil {
			err = enc.Encode(output.ToAPIComparison(l))
		}
	}
	if job.Sort {
		for _, l := range collect(job) {
			encode(l)
		}
	} else {
		for l := range job.In {
			encode(l)
		}
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}
