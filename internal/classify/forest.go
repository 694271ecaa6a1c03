package classify

import (
	"errors"
	"math/rand"
)

// RandomForest is a bagged ensemble of decision trees. The evaluation
// pipeline uses a single estimator to mirror the dataset's published
// fitting example; more estimators trade run time for stability.
type RandomForest struct {
	NEstimators int
	MaxDepth    int
	Bootstrap   bool
	Seed        int64

	trees    []*DecisionTree
	nClasses int
}

// NewRandomForest returns a forest with n estimators seeded from seed.
// Bootstrap sampling is enabled when n > 1; a single-tree forest trains on
// the full set so it behaves like a plain decision tree.
func NewRandomForest(n int, seed int64) *RandomForest {
	return &RandomForest{
		NEstimators: n,
		Bootstrap:   n > 1,
		Seed:        seed,
	}
}

// Fit trains every tree. Bootstrap resampling draws row indices with
// replacement, one independent sequence per tree.
func (rf *RandomForest) Fit(X [][]float64, y []int, nClasses int) error {
	if rf.NEstimators <= 0 {
		return errors.New("random forest: need at least one estimator")
	}
	if len(X) == 0 {
		return errors.New("random forest: empty training set")
	}
	rf.nClasses = nClasses
	rf.trees = make([]*DecisionTree, rf.NEstimators)

	for i := 0; i < rf.NEstimators; i++ {
		treeSeed := rf.Seed + int64(i)
		bx, by := X, y
		if rf.Bootstrap {
			rnd := rand.New(rand.NewSource(treeSeed))
			bx = make([][]float64, len(X))
			by = make([]int, len(y))
			for j := range X {
				k := rnd.Intn(len(X))
				bx[j] = X[k]
				by[j] = y[k]
			}
		}
		tree := NewDecisionTree(treeSeed)
		tree.MaxDepth = rf.MaxDepth
		if err := tree.Fit(bx, by, nClasses); err != nil {
			return err
		}
		rf.trees[i] = tree
	}
	return nil
}

// Predict returns the majority vote across trees for one feature vector.
// Ties break toward the lower class index.
func (rf *RandomForest) Predict(x []float64) int {
	votes := make([]int, rf.nClasses)
	for _, t := range rf.trees {
		votes[t.Predict(x)]++
	}
	best, class := -1, 0
	for c, n := range votes {
		if n > best {
			best = n
			class = c
		}
	}
	return class
}

// PredictAll returns the predicted class index for every row of X.
func (rf *RandomForest) PredictAll(X [][]float64) []int {
	out := make([]int, len(X))
	for i, x := range X {
		out[i] = rf.Predict(x)
	}
	return out
}
