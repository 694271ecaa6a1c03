package simulate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleClassCounts(t *testing.T) {
	s := NewSampler(42)
	cols := s.SampleClass(TreeParams(), 100)
	if cols.Len() != 100 {
		t.Errorf("Len() = %d, want 100", cols.Len())
	}
	for _, n := range []int{len(cols.Size), len(cols.Roughness), len(cols.Motion), len(cols.Color)} {
		if n != 100 {
			t.Errorf("column length = %d, want 100", n)
		}
	}
	if cols.Class != ClassTree {
		t.Errorf("class = %q, want %q", cols.Class, ClassTree)
	}
}

func TestSampleClassPaletteContainment(t *testing.T) {
	s := NewSampler(7)
	for _, params := range []ClassParams{TreeParams(), HikerParams(), DogParams()} {
		allowed := make(map[string]bool)
		for _, cw := range params.Colors {
			allowed[cw.Color] = true
		}
		cols := s.SampleClass(params, 500)
		for i, c := range cols.Color {
			if !allowed[c] {
				t.Errorf("%s row %d: color %q not in palette", params.Class, i, c)
			}
		}
	}
}

func TestSamplerDeterminism(t *testing.T) {
	cfg := Config{Trees: 50, Hikers: 30, Dogs: 20, Seed: 1234567}

	t1, h1, d1 := NewSampler(cfg.Seed).SampleAll(cfg)
	t2, h2, d2 := NewSampler(cfg.Seed).SampleAll(cfg)

	for _, pair := range []struct {
		name string
		a, b Columns
	}{{"trees", t1, t2}, {"hikers", h1, h2}, {"dogs", d1, d2}} {
		if diff := cmp.Diff(pair.a, pair.b); diff != "" {
			t.Errorf("%s differ between identically seeded runs (-first +second):\n%s", pair.name, diff)
		}
	}
}

func TestSamplerSeedChangesOutput(t *testing.T) {
	a := NewSampler(1).SampleClass(TreeParams(), 50)
	b := NewSampler(2).SampleClass(TreeParams(), 50)
	if cmp.Equal(a, b) {
		t.Error("different seeds produced identical samples")
	}
}

func TestTreeSizeUsesOwnRoughnessAndMotion(t *testing.T) {
	// With SizeScale zeroed, size is exactly the texture term of the same
	// row's roughness and motion draws.
	p := TreeParams()
	p.SizeScale = 0
	cols := NewSampler(9).SampleClass(p, 200)
	for i := range cols.Size {
		want := (cols.Roughness[i] + 1) / (cols.Motion[i] + 1) * p.SizeTextureWeight
		if math.Abs(cols.Size[i]-want) > 1e-12 {
			t.Fatalf("row %d: size = %v, want texture term %v", i, cols.Size[i], want)
		}
	}
}

func TestSkewNormalRightSkew(t *testing.T) {
	s := NewSampler(3)
	sn := SkewNormal{Alpha: 0.4, Src: s.src}

	n := 20000
	var sum float64
	for i := 0; i < n; i++ {
		sum += sn.Rand()
	}
	mean := sum / float64(n)

	// E[Z] = delta*sqrt(2/pi) with delta = alpha/sqrt(1+alpha^2).
	delta := 0.4 / math.Sqrt(1+0.4*0.4)
	want := delta * math.Sqrt(2/math.Pi)
	if math.Abs(mean-want) > 0.05 {
		t.Errorf("skew-normal mean = %.4f, want about %.4f", mean, want)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"all zero", Config{}, false},
		{"negative trees", Config{Trees: -1}, true},
		{"negative dogs", Config{Dogs: -5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultConfigCounts(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Total() != 4600 {
		t.Errorf("Total() = %d, want 4600", cfg.Total())
	}
	if cfg.Seed != 1234567 {
		t.Errorf("Seed = %d, want 1234567", cfg.Seed)
	}
}
