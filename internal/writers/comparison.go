package writers

import (
	"io"

	"dnadiff/internal/output"
)

func init() {
	RegisterComparison("text", writeText)
	RegisterComparison("json", writeJSON)
	RegisterComparison("jsonl", writeJSONL)
}

// StartComparisonWriter starts a goroutine that writes each comparison sent
// on the returned channel in format. Close the channel, then read the
// error channel once. Broken pipes are not reported.
func StartComparisonWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- output.Labeled, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Labeled, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := writeComparison(format, out, Job{In: in, Sort: sort, Header: header})
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

func collect(job Job) []output.Labeled {
	var buf []output.Labeled
	for l := range job.In {
		buf = append(buf, l)
	}
	if job.Sort {
		output.SortByChromosome(buf)
	}
	return buf
}

func writeText(w io.Writer, job Job) error {
	if !job.Sort {
		return output.StreamText(w, job.In, job.Header)
	}
	return output.WriteText(w, collect(job), job.Header)
}

func writeJSON(w io.Writer, job Job) error {
	return output.WriteJSON(w, collect(job))
}
