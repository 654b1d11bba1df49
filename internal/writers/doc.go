// Package writers serializes comparisons as they come off the pipeline.
//
// Formats are looked up in a registry; JSON and JSONL go through pkg/api
// (v1) for a stable wire format.
package writers
