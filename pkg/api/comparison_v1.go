// pkg/api/comparison_v1.go
package api

// ComparisonV1 is the stable JSON/JSONL schema for one chromosome.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ComparisonV1 struct {
	Chromosome      int                `json:"chromosome"`
	Name            string             `json:"name"`
	Leading1        int                `json:"leading1"`
	Leading2        int                `json:"leading2"`
	Trailing1       int                `json:"trailing1"`
	Trailing2       int                `json:"trailing2"`
	Transformations []TransformationV1 `json:"transformations"`
}

// TransformationV1 is one edit. Index counts from 0 in the first sequence
// as edited by the transformations before it.
type TransformationV1 struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"` // "insertion" | "deletion" | "substitution"
	Text  string `json:"text"`
	Text2 string `json:"text2,omitempty"`
}
