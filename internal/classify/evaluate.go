package classify

import (
	"fmt"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// EvalConfig configures an evaluation run.
type EvalConfig struct {
	TestFraction float64 // fraction of rows held out for testing
	NEstimators  int
	Seed         int64
}

// DefaultEvalConfig mirrors the dataset's published fitting example: a
// 70/30 split and a single-tree forest.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{TestFraction: 0.3, NEstimators: 1, Seed: 1}
}

// ClassMetrics holds per-class precision, recall, and F1 for one split.
type ClassMetrics struct {
	Class     string
	Precision float64
	Recall    float64
	F1        float64
}

// SplitReport holds the metrics for one of the train/test splits.
type SplitReport struct {
	Rows      int
	Accuracy  float64
	PerClass  []ClassMetrics
	Confusion *ConfusionMatrix
}

// Report holds the full evaluation result.
type Report struct {
	Features []string
	Classes  []string
	Train    SplitReport
	Test     SplitReport
}

// Evaluate demonstrates that the generated table is learnable: it one-hot
// encodes color, splits the rows with a seeded shuffle, fits a forest on
// the training split, and scores both splits with standard multi-class
// metrics.
func Evaluate(d *dataset.Dataset, cfg EvalConfig) (*Report, error) {
	if d.Len() == 0 {
		return nil, fmt.Errorf("evaluate: dataset is empty")
	}

	train, test := TrainTestSplit(d, cfg.TestFraction, cfg.Seed)
	if train.Len() == 0 || test.Len() == 0 {
		return nil, fmt.Errorf("evaluate: split produced an empty set (train=%d test=%d)",
			train.Len(), test.Len())
	}

	// The encoder and label vocabulary are fitted on training data only;
	// unseen test colors encode to all-zero indicators.
	enc := FitEncoder(train)
	_, classes := EncodeLabels(d)
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	forest := NewRandomForest(cfg.NEstimators, cfg.Seed)
	if err := forest.Fit(enc.Features(train), labelsWith(train, index), len(classes)); err != nil {
		return nil, fmt.Errorf("evaluate: fit: %w", err)
	}

	report := &Report{
		Features: enc.FeatureNames(),
		Classes:  classes,
		Train:    scoreSplit(forest, enc, train, index, classes),
		Test:     scoreSplit(forest, enc, test, index, classes),
	}
	return report, nil
}

// EvaluateFile loads a previously written table and evaluates it.
func EvaluateFile(path string, cfg EvalConfig) (*Report, error) {
	d, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Evaluate(d, cfg)
}

func scoreSplit(forest *RandomForest, enc *Encoder, d *dataset.Dataset, index map[string]int, classes []string) SplitReport {
	actual := labelsWith(d, index)
	predicted := forest.PredictAll(enc.Features(d))
	cm := NewConfusionMatrix(actual, predicted, classes)

	perClass := make([]ClassMetrics, len(classes))
	for i, c := range classes {
		perClass[i] = ClassMetrics{
			Class:     c,
			Precision: cm.Precision(i),
			Recall:    cm.Recall(i),
			F1:        cm.F1(i),
		}
	}
	return SplitReport{
		Rows:      d.Len(),
		Accuracy:  cm.Accuracy(),
		PerClass:  perClass,
		Confusion: cm,
	}
}

func labelsWith(d *dataset.Dataset, index map[string]int) []int {
	y := make([]int, d.Len())
	for i, o := range d.Objects {
		y[i] = index[o.Label]
	}
	return y
}
