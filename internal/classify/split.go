package classify

import (
	"math/rand"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// TrainTestSplit shuffles the rows with a seeded permutation and splits them
// into train and test sets. testFrac is the fraction of rows assigned to the
// test set; the row structs are copied, not shared.
func TrainTestSplit(d *dataset.Dataset, testFrac float64, seed int64) (train, test *dataset.Dataset) {
	n := d.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testFrac)

	train = &dataset.Dataset{}
	test = &dataset.Dataset{}
	for i, idx := range perm {
		if i < nTest {
			test.Objects = append(test.Objects, d.Objects[idx])
		} else {
			train.Objects = append(train.Objects, d.Objects[idx])
		}
	}
	return train, test
}
