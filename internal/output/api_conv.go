// internal/output/api_conv.go
package output

import (
	"fmt"
	"sort"

	"dnadiff-core/chromosome"
	"dnadiff-core/edit"

	"dnadiff/pkg/api"
)

// Labeled is a comparison with the display name of its chromosome.
type Labeled struct {
	Name string
	chromosome.Comparison
}

// ToAPIComparison converts a comparison to the stable wire schema (v1).
func ToAPIComparison(l Labeled) api.ComparisonV1 {
	v := api.ComparisonV1{
		Chromosome:      l.Chromosome,
		Name:            l.Name,
		Leading1:        l.Leading1,
		Leading2:        l.Leading2,
		Trailing1:       l.Trailing1,
		Trailing2:       l.Trailing2,
		Transformations: make([]api.TransformationV1, 0, len(l.Transformations)),
	}
	for _, t := range l.Transformations {
		v.Transformations = append(v.Transformations, api.TransformationV1{
			Index: t.Index, Kind: t.Kind.String(), Text: t.Text, Text2: t.Text2,
		})
	}
	return v
}

// FromAPIComparison is the inverse of ToAPIComparison.
func FromAPIComparison(v api.ComparisonV1) (Labeled, error) {
	l := Labeled{
		Name: v.Name,
		Comparison: chromosome.Comparison{
			Chromosome: v.Chromosome,
			Leading1:   v.Leading1,
			Leading2:   v.Leading2,
			Trailing1:  v.Trailing1,
			Trailing2:  v.Trailing2,
		},
	}
	for i, t := range v.Transformations {
		k, err := edit.ParseKind(t.Kind)
		if err != nil {
			return Labeled{}, fmt.Errorf("chromosome %d, transformation %d: %w", v.Chromosome, i, err)
		}
		l.Transformations = append(l.Transformations, edit.Transformation{Index: t.Index, Kind: k, Text: t.Text, Text2: t.Text2})
	}
	return l, nil
}

// SortByChromosome orders list by chromosome number.
func SortByChromosome(list []Labeled) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Chromosome < list[j].Chromosome })
}
