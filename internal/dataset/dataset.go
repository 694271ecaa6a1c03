// Package dataset defines the snow-object table schema, assembles sampled
// columns into rows, applies the value floors, and serializes the table to
// the tab-separated output format.
package dataset

import (
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/snowsim/internal/simulate"
)

// Value floors applied after generation. Out-of-range draws are clamped to
// the floor rather than resampled, so clipped fields keep the truncated
// shape of the underlying distribution.
const (
	MinSize      = 0.2
	MinRoughness = 0.0
	MinMotion    = 0.0
)

// Object is one row of the generated table.
type Object struct {
	Size      float64
	Roughness float64
	Color     string
	Motion    float64
	Label     string
}

// Dataset is an ordered sequence of objects. Row order is insertion order
// (trees, then hikers, then dogs) and is preserved through serialization so
// label blocks stay contiguous.
type Dataset struct {
	Objects []Object
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Objects) }

// Append adds the sampled columns for one class, tagging every row with the
// class label. Clamping is not applied here; call Clamp once after all
// classes are appended.
func (d *Dataset) Append(cols simulate.Columns) {
	for i := 0; i < cols.Len(); i++ {
		d.Objects = append(d.Objects, Object{
			Size:      cols.Size[i],
			Roughness: cols.Roughness[i],
			Color:     cols.Color[i],
			Motion:    cols.Motion[i],
			Label:     string(cols.Class),
		})
	}
}

// Assemble concatenates per-class columns in dataset order and applies the
// value floors.
func Assemble(trees, hikers, dogs simulate.Columns) *Dataset {
	d := &Dataset{}
	d.Append(trees)
	d.Append(hikers)
	d.Append(dogs)
	d.Clamp()
	return d
}

// Clamp raises every out-of-range value to its floor.
func (d *Dataset) Clamp() {
	for i := range d.Objects {
		o := &d.Objects[i]
		if o.Size < MinSize {
			o.Size = MinSize
		}
		if o.Roughness < MinRoughness {
			o.Roughness = MinRoughness
		}
		if o.Motion < MinMotion {
			o.Motion = MinMotion
		}
	}
}

// LabelCounts returns the number of rows per label.
func (d *Dataset) LabelCounts() map[string]int {
	counts := make(map[string]int)
	for _, o := range d.Objects {
		counts[o.Label]++
	}
	return counts
}

// Filter returns the rows whose label matches.
func (d *Dataset) Filter(label string) *Dataset {
	out := &Dataset{}
	for _, o := range d.Objects {
		if o.Label == label {
			out.Objects = append(out.Objects, o)
		}
	}
	return out
}

// Column returns the named numeric column. Valid names are "size",
// "roughness", and "motion"; any other name returns nil.
func (d *Dataset) Column(name string) []float64 {
	out := make([]float64, 0, len(d.Objects))
	for _, o := range d.Objects {
		switch name {
		case "size":
			out = append(out, o.Size)
		case "roughness":
			out = append(out, o.Roughness)
		case "motion":
			out = append(out, o.Motion)
		default:
			return nil
		}
	}
	return out
}

// ColumnSummary holds the mean and standard deviation of one numeric column
// within one label block.
type ColumnSummary struct {
	Label  string
	Column string
	Mean   float64
	Stddev float64
	N      int
}

// Summarise computes per-label mean and stddev for every numeric column,
// in label-block order.
func (d *Dataset) Summarise() []ColumnSummary {
	var out []ColumnSummary
	seen := make(map[string]bool)
	var labels []string
	for _, o := range d.Objects {
		if !seen[o.Label] {
			seen[o.Label] = true
			labels = append(labels, o.Label)
		}
	}
	for _, label := range labels {
		sub := d.Filter(label)
		for _, col := range []string{"size", "roughness", "motion"} {
			vals := sub.Column(col)
			mean, std := stat.MeanStdDev(vals, nil)
			out = append(out, ColumnSummary{
				Label:  label,
				Column: col,
				Mean:   mean,
				Stddev: std,
				N:      len(vals),
			})
		}
	}
	return out
}
