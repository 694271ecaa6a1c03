package dataset

import (
	"math"
	"testing"

	"github.com/banshee-data/snowsim/internal/simulate"
)

func TestAssembleOrderAndCounts(t *testing.T) {
	cfg := simulate.Config{Trees: 30, Hikers: 20, Dogs: 10, Seed: 99}
	trees, hikers, dogs := simulate.NewSampler(cfg.Seed).SampleAll(cfg)
	d := Assemble(trees, hikers, dogs)

	if d.Len() != 60 {
		t.Fatalf("Len() = %d, want 60", d.Len())
	}
	counts := d.LabelCounts()
	if counts["tree"] != 30 || counts["hiker"] != 20 || counts["dog"] != 10 {
		t.Errorf("label counts = %v, want tree=30 hiker=20 dog=10", counts)
	}

	// Label blocks must be contiguous in generation order.
	for i, o := range d.Objects {
		var want string
		switch {
		case i < 30:
			want = "tree"
		case i < 50:
			want = "hiker"
		default:
			want = "dog"
		}
		if o.Label != want {
			t.Fatalf("row %d label = %q, want %q", i, o.Label, want)
		}
	}
}

func TestClampFloors(t *testing.T) {
	d := &Dataset{Objects: []Object{
		{Size: -3, Roughness: -0.5, Motion: -1, Color: "green", Label: "tree"},
		{Size: 0.19, Roughness: 0, Motion: 0, Color: "brown", Label: "dog"},
		{Size: 5, Roughness: 1.2, Motion: 2.5, Color: "black", Label: "hiker"},
	}}
	d.Clamp()

	for i, o := range d.Objects {
		if o.Size < MinSize {
			t.Errorf("row %d size = %v, below floor %v", i, o.Size, MinSize)
		}
		if o.Roughness < MinRoughness || o.Motion < MinMotion {
			t.Errorf("row %d roughness=%v motion=%v below floor", i, o.Roughness, o.Motion)
		}
	}
	if d.Objects[0].Size != MinSize {
		t.Errorf("clamped size = %v, want exactly %v", d.Objects[0].Size, MinSize)
	}
	if d.Objects[2].Size != 5 {
		t.Errorf("in-range size changed to %v", d.Objects[2].Size)
	}
}

func TestGeneratedRowsRespectFloors(t *testing.T) {
	cfg := simulate.Config{Trees: 2000, Hikers: 200, Dogs: 100, Seed: 1234567}
	trees, hikers, dogs := simulate.NewSampler(cfg.Seed).SampleAll(cfg)
	d := Assemble(trees, hikers, dogs)

	for i, o := range d.Objects {
		if o.Size < MinSize || o.Roughness < 0 || o.Motion < 0 {
			t.Fatalf("row %d violates floors: size=%v roughness=%v motion=%v",
				i, o.Size, o.Roughness, o.Motion)
		}
	}
}

func TestFilterAndColumn(t *testing.T) {
	d := &Dataset{Objects: []Object{
		{Size: 1, Roughness: 2, Motion: 3, Color: "green", Label: "tree"},
		{Size: 4, Roughness: 5, Motion: 6, Color: "red", Label: "hiker"},
		{Size: 7, Roughness: 8, Motion: 9, Color: "brown", Label: "tree"},
	}}

	trees := d.Filter("tree")
	if trees.Len() != 2 {
		t.Fatalf("Filter(tree).Len() = %d, want 2", trees.Len())
	}
	sizes := trees.Column("size")
	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 7 {
		t.Errorf("tree sizes = %v, want [1 7]", sizes)
	}
	if d.Column("nope") != nil {
		t.Error("unknown column should return nil")
	}
}

func TestSummarise(t *testing.T) {
	d := &Dataset{Objects: []Object{
		{Size: 2, Roughness: 1, Motion: 1, Color: "green", Label: "tree"},
		{Size: 4, Roughness: 1, Motion: 1, Color: "brown", Label: "tree"},
	}}
	sums := d.Summarise()
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	if sums[0].Column != "size" || sums[0].Label != "tree" {
		t.Fatalf("first summary = %+v, want tree/size", sums[0])
	}
	if math.Abs(sums[0].Mean-3) > 1e-12 {
		t.Errorf("size mean = %v, want 3", sums[0].Mean)
	}
	if math.Abs(sums[0].Stddev-math.Sqrt2) > 1e-12 {
		t.Errorf("size stddev = %v, want sqrt(2)", sums[0].Stddev)
	}
}
