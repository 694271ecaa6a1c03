package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/snowsim/internal/dataset"
	"github.com/banshee-data/snowsim/internal/simulate"
	"github.com/banshee-data/snowsim/internal/testutil"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	cfg := simulate.Config{Trees: 60, Hikers: 30, Dogs: 20, Seed: 11}
	trees, hikers, dogs := simulate.NewSampler(cfg.Seed).SampleAll(cfg)
	return dataset.Assemble(trees, hikers, dogs)
}

func TestHistogramWritesPNG(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "size.png")

	testutil.AssertNoError(t, Histogram(d, "size", path, HistogramOptions{}))

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err)
	if info.Size() == 0 {
		t.Error("histogram PNG is empty")
	}
}

func TestHistogramUnknownColumn(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "bad.png")
	testutil.AssertError(t, Histogram(d, "weight", path, HistogramOptions{}))
}

func TestScatterWritesPNG(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "scatter.png")

	testutil.AssertNoError(t, Scatter(d, "motion", "size", path, ScatterOptions{}))

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err)
	if info.Size() == 0 {
		t.Error("scatter PNG is empty")
	}
}

func TestHTMLReport(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "report.html")

	testutil.AssertNoError(t, HTMLReport(d, path))

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	html := string(data)
	for _, want := range []string{"size", "roughness", "motion", "color"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q section", want)
		}
	}
}

func TestHTMLReportMissingDirectory(t *testing.T) {
	d := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "missing", "report.html")
	testutil.AssertError(t, HTMLReport(d, path))
}
