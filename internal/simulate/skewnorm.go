package simulate

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SkewNormal samples the standard skew-normal distribution with shape
// parameter Alpha, via the Azzalini construction: with U0, U1 independent
// unit normals and delta = Alpha/sqrt(1+Alpha^2),
//
//	Z = delta*|U0| + sqrt(1-delta^2)*U1
//
// Alpha = 0 reduces to the unit normal; positive Alpha skews right.
type SkewNormal struct {
	Alpha float64
	Src   rand.Source
}

// Rand returns a random sample drawn from the distribution.
func (s SkewNormal) Rand() float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: s.Src}
	delta := s.Alpha / math.Sqrt(1+s.Alpha*s.Alpha)
	u0 := norm.Rand()
	u1 := norm.Rand()
	return delta*math.Abs(u0) + math.Sqrt(1-delta*delta)*u1
}
