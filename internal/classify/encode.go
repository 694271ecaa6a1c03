// Package classify fits a small decision-tree ensemble to the generated
// snow-object table and reports multi-class accuracy, per-class precision
// and recall, and confusion matrices.
package classify

import (
	"sort"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// Encoder one-hot encodes the color column into boolean indicator features.
// Category order is sorted so the feature layout is deterministic.
type Encoder struct {
	colors []string
	index  map[string]int
}

// FitEncoder learns the color vocabulary from a dataset. A color unseen at
// fit time encodes to the all-zeros indicator block.
func FitEncoder(d *dataset.Dataset) *Encoder {
	seen := make(map[string]bool)
	for _, o := range d.Objects {
		seen[o.Color] = true
	}
	colors := make([]string, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Strings(colors)

	index := make(map[string]int, len(colors))
	for i, c := range colors {
		index[c] = i
	}
	return &Encoder{colors: colors, index: index}
}

// FeatureNames returns the encoded column names: the numeric columns
// followed by one indicator per color.
func (e *Encoder) FeatureNames() []string {
	names := []string{"size", "roughness", "motion"}
	return append(names, e.colors...)
}

// Features encodes every row as a numeric feature vector: size, roughness,
// motion, then the one-hot color block. The label column is excluded.
func (e *Encoder) Features(d *dataset.Dataset) [][]float64 {
	X := make([][]float64, d.Len())
	for i, o := range d.Objects {
		vec := make([]float64, 3+len(e.colors))
		vec[0] = o.Size
		vec[1] = o.Roughness
		vec[2] = o.Motion
		if j, ok := e.index[o.Color]; ok {
			vec[3+j] = 1
		}
		X[i] = vec
	}
	return X
}

// EncodeLabels maps label strings to class indices, returning the encoded
// labels and the sorted class vocabulary.
func EncodeLabels(d *dataset.Dataset) ([]int, []string) {
	seen := make(map[string]bool)
	for _, o := range d.Objects {
		seen[o.Label] = true
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	y := make([]int, d.Len())
	for i, o := range d.Objects {
		y[i] = index[o.Label]
	}
	return y, classes
}
