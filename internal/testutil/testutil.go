// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/banshee-data/snowsim/internal/dataset"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// SmallDataset returns a hand-built table with two well-separated classes,
// suitable for classifier and serialization tests.
func SmallDataset() *dataset.Dataset {
	d := &dataset.Dataset{}
	for i := 0; i < 20; i++ {
		d.Objects = append(d.Objects, dataset.Object{
			Size: 12 + float64(i)*0.1, Roughness: 1.0, Color: "green", Motion: 2.0, Label: "tree",
		})
	}
	for i := 0; i < 20; i++ {
		d.Objects = append(d.Objects, dataset.Object{
			Size: 1.5 + float64(i)*0.01, Roughness: 1.0, Color: "red", Motion: 4.5, Label: "hiker",
		})
	}
	return d
}
