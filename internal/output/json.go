// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"dnadiff/pkg/api"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 comparisons.
func WriteJSON(w io.Writer, list []Labeled) error {
	out := make([]api.ComparisonV1, 0, len(list))
	for _, l := range list {
		out = append(out, ToAPIComparison(l))
	}
	return EncodePretty(w, out)
}
