package classify

import (
	"fmt"
	"strings"
)

// ConfusionMatrix cross-tabulates actual vs predicted class indices.
// Rows are actual classes, columns are predicted classes.
type ConfusionMatrix struct {
	Classes []string
	Counts  [][]int
}

// NewConfusionMatrix tallies predictions against actuals. Both slices hold
// class indices into classes.
func NewConfusionMatrix(actual, predicted []int, classes []string) *ConfusionMatrix {
	counts := make([][]int, len(classes))
	for i := range counts {
		counts[i] = make([]int, len(classes))
	}
	for i := range actual {
		counts[actual[i]][predicted[i]]++
	}
	return &ConfusionMatrix{Classes: classes, Counts: counts}
}

// Total returns the number of scored rows.
func (m *ConfusionMatrix) Total() int {
	total := 0
	for _, row := range m.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Accuracy returns the fraction of rows on the diagonal.
func (m *ConfusionMatrix) Accuracy() float64 {
	total := m.Total()
	if total == 0 {
		return 0
	}
	correct := 0
	for i := range m.Counts {
		correct += m.Counts[i][i]
	}
	return float64(correct) / float64(total)
}

// Precision returns tp/(tp+fp) for one class: of the rows predicted as that
// class, the fraction that actually were. Zero when the class was never
// predicted.
func (m *ConfusionMatrix) Precision(class int) float64 {
	predicted := 0
	for i := range m.Counts {
		predicted += m.Counts[i][class]
	}
	if predicted == 0 {
		return 0
	}
	return float64(m.Counts[class][class]) / float64(predicted)
}

// Recall returns tp/(tp+fn) for one class: of the rows actually in that
// class, the fraction predicted as it. Zero when the class has no rows.
func (m *ConfusionMatrix) Recall(class int) float64 {
	actual := 0
	for _, n := range m.Counts[class] {
		actual += n
	}
	if actual == 0 {
		return 0
	}
	return float64(m.Counts[class][class]) / float64(actual)
}

// F1 returns the harmonic mean of precision and recall for one class.
func (m *ConfusionMatrix) F1(class int) float64 {
	p, r := m.Precision(class), m.Recall(class)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Normalized returns the matrix with each row scaled to sum to 1 (recall
// form). Rows with no actual samples stay all-zero.
func (m *ConfusionMatrix) Normalized() [][]float64 {
	out := make([][]float64, len(m.Counts))
	for i, row := range m.Counts {
		total := 0
		for _, n := range row {
			total += n
		}
		out[i] = make([]float64, len(row))
		if total == 0 {
			continue
		}
		for j, n := range row {
			out[i][j] = float64(n) / float64(total)
		}
	}
	return out
}

// String renders the raw-count matrix as an aligned text table with actual
// classes down the rows and predicted classes across the columns.
func (m *ConfusionMatrix) String() string {
	width := 9
	for _, c := range m.Classes {
		if len(c)+2 > width {
			width = len(c) + 2
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width, "")
	for _, c := range m.Classes {
		fmt.Fprintf(&b, "%*s", width, c)
	}
	b.WriteByte('\n')
	for i, row := range m.Counts {
		fmt.Fprintf(&b, "%*s", width, m.Classes[i])
		for _, n := range row {
			fmt.Fprintf(&b, "%*d", width, n)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
