package modefit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Density holds density values sampled on a grid, one value per grid point.
// A Density is derived data: it is always recomputed from parameters rather
// than mutated, except by Normalize.
type Density []float64

// GaussianDensity evaluates the normal density with the given mean and
// variance at every point of the grid. The variance must be positive;
// callers guarantee this by exponentiating a log-variance. If dst is non-nil
// the values are stored in-place.
func GaussianDensity(dst Density, g GridConfig, mean, variance float64) Density {
	n := g.Len()
	if dst == nil {
		dst = make(Density, n)
	}
	if len(dst) != n {
		panic(errLen)
	}
	norm := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	for i := range dst {
		dst[i] = norm.Prob(g.Min + float64(i)*g.Step)
	}
	return dst
}

// Sum returns the total mass of the sampled density.
func (d Density) Sum() float64 {
	return floats.Sum(d)
}

// Normalize scales the density in-place so its values sum to 1, turning the
// grid samples into a discrete probability vector. Normalizing an already
// normalized density is a no-op up to floating-point roundoff.
func (d Density) Normalize() Density {
	floats.Scale(1/floats.Sum(d), d)
	return d
}

// Modes returns the grid locations of the local maxima of the density.
// Interior points strictly higher than the left neighbor and at least as
// high as the right neighbor count; maxima below a small fraction of the
// global peak are ignored so that flat tails do not register.
func (d Density) Modes(g GridConfig) []float64 {
	if len(d) != g.Len() {
		panic(errLen)
	}
	floor := 0.05 * floats.Max(d)
	var modes []float64
	for i := 1; i < len(d)-1; i++ {
		if d[i] > d[i-1] && d[i] >= d[i+1] && d[i] > floor {
			modes = append(modes, g.Min+float64(i)*g.Step)
		}
	}
	return modes
}

// MassWithin returns the fraction of the density's total mass lying in the
// closed interval [lo, hi].
func (d Density) MassWithin(g GridConfig, lo, hi float64) float64 {
	if len(d) != g.Len() {
		panic(errLen)
	}
	var in float64
	for i, v := range d {
		x := g.Min + float64(i)*g.Step
		if x >= lo && x <= hi {
			in += v
		}
	}
	return in / floats.Sum(d)
}
