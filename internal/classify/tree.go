package classify

import (
	"errors"
	"math/rand"
	"sort"
)

// DecisionTree is a CART-style classifier using gini impurity and numeric
// threshold splits. One-hot indicator columns split naturally on a 0.5
// threshold, so categorical features need no special handling here.
type DecisionTree struct {
	MaxDepth        int // 0 means no depth limit
	MinSamplesSplit int
	MaxFeatures     int // 0 means consider all features at every split
	Seed            int64

	root     *treeNode
	nClasses int
}

type treeNode struct {
	leaf      bool
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	class     int
}

// NewDecisionTree returns a tree with the defaults used by the evaluation
// pipeline: unlimited depth, split nodes of two or more samples.
func NewDecisionTree(seed int64) *DecisionTree {
	return &DecisionTree{MinSamplesSplit: 2, Seed: seed}
}

// Fit builds the tree on rows X with class indices y in [0, nClasses).
func (t *DecisionTree) Fit(X [][]float64, y []int, nClasses int) error {
	if len(X) == 0 {
		return errors.New("decision tree: empty training set")
	}
	if len(X) != len(y) {
		return errors.New("decision tree: X and y length mismatch")
	}
	t.nClasses = nClasses

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(t.Seed))
	t.root = t.build(X, y, idx, 0, rnd)
	return nil
}

// Predict returns the class index for one feature vector.
func (t *DecisionTree) Predict(x []float64) int {
	node := t.root
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.class
}

// PredictAll returns the class index for every row of X.
func (t *DecisionTree) PredictAll(X [][]float64) []int {
	out := make([]int, len(X))
	for i, x := range X {
		out[i] = t.Predict(x)
	}
	return out
}

func (t *DecisionTree) build(X [][]float64, y []int, idx []int, depth int, rnd *rand.Rand) *treeNode {
	counts := make([]int, t.nClasses)
	for _, i := range idx {
		counts[y[i]]++
	}
	majority, pure := majorityClass(counts, len(idx))

	if pure || len(idx) < t.MinSamplesSplit || (t.MaxDepth > 0 && depth >= t.MaxDepth) {
		return &treeNode{leaf: true, class: majority}
	}

	feature, threshold, ok := t.bestSplit(X, y, idx, counts, rnd)
	if !ok {
		return &treeNode{leaf: true, class: majority}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, class: majority}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.build(X, y, left, depth+1, rnd),
		right:     t.build(X, y, right, depth+1, rnd),
	}
}

// bestSplit scans candidate features for the threshold with the lowest
// weighted gini impurity. Thresholds are midpoints between consecutive
// distinct sorted values.
func (t *DecisionTree) bestSplit(X [][]float64, y []int, idx []int, counts []int, rnd *rand.Rand) (feature int, threshold float64, ok bool) {
	nFeatures := len(X[idx[0]])
	features := featureCandidates(nFeatures, t.MaxFeatures, rnd)

	bestGini := gini(counts, len(idx))
	found := false

	sorted := make([]int, len(idx))
	for _, f := range features {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool { return X[sorted[a]][f] < X[sorted[b]][f] })

		leftCounts := make([]int, t.nClasses)
		rightCounts := make([]int, t.nClasses)
		copy(rightCounts, counts)

		for i := 0; i < len(sorted)-1; i++ {
			c := y[sorted[i]]
			leftCounts[c]++
			rightCounts[c]--

			v, next := X[sorted[i]][f], X[sorted[i+1]][f]
			if v == next {
				continue
			}
			nLeft, nRight := i+1, len(sorted)-i-1
			w := (float64(nLeft)*gini(leftCounts, nLeft) + float64(nRight)*gini(rightCounts, nRight)) / float64(len(sorted))
			if w < bestGini {
				bestGini = w
				feature = f
				threshold = (v + next) / 2
				found = true
			}
		}
	}
	return feature, threshold, found
}

// featureCandidates returns the feature indices to scan at a split: all of
// them, or a random subset of size maxFeatures.
func featureCandidates(nFeatures, maxFeatures int, rnd *rand.Rand) []int {
	if maxFeatures <= 0 || maxFeatures >= nFeatures {
		all := make([]int, nFeatures)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return rnd.Perm(nFeatures)[:maxFeatures]
}

func majorityClass(counts []int, total int) (class int, pure bool) {
	best := -1
	for c, n := range counts {
		if n > best {
			best = n
			class = c
		}
	}
	return class, best == total
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	g := 1.0
	for _, n := range counts {
		p := float64(n) / float64(total)
		g -= p * p
	}
	return g
}
