// Package pipeline fans chromosome pairs out to a bounded pool of
// comparers and hands each finished comparison to a visit callback.
//
// Chromosomes whose packed bytes hash the same are reported unchanged
// without running the comparer.
package pipeline
