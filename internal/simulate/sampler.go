// Package simulate draws per-class feature samples for the snow-object
// dataset: trees, hikers, and dogs described by size, surface roughness,
// motion, and color. All randomness flows through one seeded source so a
// run is reproducible from its seed alone.
package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Columns holds the raw per-class sample arrays, one entry per object,
// before clamping or assembly.
type Columns struct {
	Class     Class
	Size      []float64
	Roughness []float64
	Motion    []float64
	Color     []string
}

// Len returns the number of sampled objects.
func (c Columns) Len() int { return len(c.Size) }

// Sampler generates feature columns from class distribution parameters.
// It is not safe for concurrent use: draws consume a shared random source.
type Sampler struct {
	src  rand.Source
	norm distuv.Normal
}

// NewSampler returns a Sampler whose draws all derive from the given seed.
func NewSampler(seed uint64) *Sampler {
	src := rand.NewSource(seed)
	return &Sampler{
		src:  src,
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// SampleClass draws n objects from the class distributions in p. Draw order
// is color, roughness, motion, size; size uses the same row's roughness and
// motion when the class couples them. The caller is responsible for n >= 0.
func (s *Sampler) SampleClass(p ClassParams, n int) Columns {
	cols := Columns{
		Class:     p.Class,
		Size:      make([]float64, n),
		Roughness: make([]float64, n),
		Motion:    make([]float64, n),
		Color:     make([]string, n),
	}

	weights := make([]float64, len(p.Colors))
	for i, cw := range p.Colors {
		weights[i] = cw.Weight
	}
	cat := distuv.NewCategorical(weights, s.src)
	for i := 0; i < n; i++ {
		cols.Color[i] = p.Colors[int(cat.Rand())].Color
	}

	for i := 0; i < n; i++ {
		cols.Roughness[i] = (s.norm.Rand()*p.RoughnessScale + p.RoughnessShift) / p.RoughnessDivisor
	}

	skew := SkewNormal{Alpha: p.MotionSkew, Src: s.src}
	for i := 0; i < n; i++ {
		base := s.norm.Rand()
		if p.MotionSkew != 0 {
			base = skew.Rand()
		}
		cols.Motion[i] = base*p.MotionScale + p.MotionShift
	}

	for i := 0; i < n; i++ {
		size := s.norm.Rand()*p.SizeScale + p.SizeShift
		if p.SizeTextureWeight != 0 {
			size += (cols.Roughness[i] + 1) / (cols.Motion[i] + 1) * p.SizeTextureWeight
		}
		cols.Size[i] = size
	}

	return cols
}

// SampleAll draws the three classes in dataset order: trees, hikers, dogs.
func (s *Sampler) SampleAll(cfg Config) (trees, hikers, dogs Columns) {
	trees = s.SampleClass(TreeParams(), cfg.Trees)
	hikers = s.SampleClass(HikerParams(), cfg.Hikers)
	dogs = s.SampleClass(DogParams(), cfg.Dogs)
	return trees, hikers, dogs
}
