package simulate

import "fmt"

// Class identifies one of the simulated snow-object classes.
type Class string

const (
	ClassTree  Class = "tree"
	ClassHiker Class = "hiker"
	ClassDog   Class = "dog"
)

// DefaultSeed matches the seed the dataset was originally published with.
const DefaultSeed uint64 = 1234567

// ColorWeight pairs a color name with its draw probability. Weights for a
// class must sum to 1.
type ColorWeight struct {
	Color  string
	Weight float64
}

// ClassParams configures the feature distributions for one object class.
//
// Roughness is (N(0,1)*RoughnessScale + RoughnessShift) / RoughnessDivisor.
// Motion is base*MotionScale + MotionShift where base is N(0,1) when
// MotionSkew is zero and skew-normal(MotionSkew) otherwise.
// Size is N(0,1)*SizeScale + SizeShift, plus
// SizeTextureWeight * (roughness+1)/(motion+1) using that row's own
// roughness and motion draws.
type ClassParams struct {
	Class  Class
	Colors []ColorWeight

	RoughnessScale   float64
	RoughnessShift   float64
	RoughnessDivisor float64

	MotionSkew  float64
	MotionScale float64
	MotionShift float64

	SizeScale         float64
	SizeShift         float64
	SizeTextureWeight float64
}

// TreeParams returns the tree distribution parameters. Tree size is coupled
// to the same row's roughness and motion: rough, slow-moving trees are large,
// and small trees blow more in the wind.
func TreeParams() ClassParams {
	return ClassParams{
		Class: ClassTree,
		Colors: []ColorWeight{
			{"green", 0.3}, {"brown", 0.35}, {"white", 0.25}, {"yellow", 0.05}, {"black", 0.05},
		},
		RoughnessScale:    10,
		RoughnessShift:    30,
		RoughnessDivisor:  30,
		MotionScale:       0.5,
		MotionShift:       2,
		SizeScale:         6,
		SizeTextureWeight: 20,
	}
}

// HikerParams returns the hiker distribution parameters. Motion is
// right-skewed to model bursts of fast movement.
func HikerParams() ClassParams {
	return ClassParams{
		Class: ClassHiker,
		Colors: []ColorWeight{
			{"green", 0.2}, {"brown", 0.25}, {"white", 0.01}, {"red", 0.04},
			{"blue", 0.1}, {"yellow", 0.05}, {"orange", 0.05}, {"black", 0.3},
		},
		RoughnessScale:   2,
		RoughnessShift:   5,
		RoughnessDivisor: 5,
		MotionSkew:       0.4,
		MotionScale:      1.5,
		MotionShift:      4,
		SizeScale:        0.3,
		SizeShift:        1.75,
	}
}

// DogParams returns the dog distribution parameters. Roughness is similar to
// hikers; motion is more variable.
func DogParams() ClassParams {
	return ClassParams{
		Class: ClassDog,
		Colors: []ColorWeight{
			{"brown", 0.3}, {"white", 0.25}, {"red", 0.05}, {"black", 0.4},
		},
		RoughnessScale:   2,
		RoughnessShift:   4.7,
		RoughnessDivisor: 5,
		MotionSkew:       0.4,
		MotionScale:      3,
		MotionShift:      4,
		SizeScale:        0.3,
		SizeShift:        1.2,
	}
}

// Config holds the per-class sample counts and the RNG seed for one
// generation run.
type Config struct {
	Trees  int
	Hikers int
	Dogs   int
	Seed   uint64
}

// DefaultConfig returns the published dataset's counts and seed.
func DefaultConfig() Config {
	return Config{Trees: 4000, Hikers: 400, Dogs: 200, Seed: DefaultSeed}
}

// Validate rejects negative counts. Zero counts are legal: an all-zero
// config produces a header-only output file.
func (c Config) Validate() error {
	if c.Trees < 0 || c.Hikers < 0 || c.Dogs < 0 {
		return fmt.Errorf("sample counts must be non-negative (trees=%d hikers=%d dogs=%d)",
			c.Trees, c.Hikers, c.Dogs)
	}
	return nil
}

// Total returns the number of rows the config will generate.
func (c Config) Total() int {
	return c.Trees + c.Hikers + c.Dogs
}
