package modefit

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Desire is the fixed bimodal target density: an equal-weight mixture of two
// univariate Gaussians. It is constructed once per run and immutable
// thereafter.
type Desire struct {
	MuA, VarA float64
	MuB, VarB float64
}

// DefaultDesire is the reference target. The components overlap but remain
// visibly bimodal.
var DefaultDesire = Desire{MuA: 1, VarA: 1, MuB: 4, VarB: 0.4}

func (d Desire) norms() (a, b distuv.Normal) {
	a = distuv.Normal{Mu: d.MuA, Sigma: math.Sqrt(d.VarA)}
	b = distuv.Normal{Mu: d.MuB, Sigma: math.Sqrt(d.VarB)}
	return a, b
}

// Grid evaluates the unnormalized target density on the grid. The result is
// deterministic: repeated calls yield bit-identical values.
func (d Desire) Grid(g GridConfig) Density {
	a, b := d.norms()
	dst := make(Density, g.Len())
	for i := range dst {
		x := g.Min + float64(i)*g.Step
		dst[i] = 0.5*a.Prob(x) + 0.5*b.Prob(x)
	}
	return dst
}

// Prob returns the target density at x.
func (d Desire) Prob(x float64) float64 {
	a, b := d.norms()
	return 0.5*a.Prob(x) + 0.5*b.Prob(x)
}

// LogProb returns the log of the target density at x.
func (d Desire) LogProb(x float64) float64 {
	a, b := d.norms()
	return floats.LogSumExp([]float64{
		math.Log(0.5) + a.LogProb(x),
		math.Log(0.5) + b.LogProb(x),
	})
}

// Rand draws a sample from the target by picking a component uniformly and
// sampling it.
func (d Desire) Rand(src rand.Source) float64 {
	a, b := d.norms()
	a.Src = src
	b.Src = src
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	if u.Rand() < 0.5 {
		return a.Rand()
	}
	return b.Rand()
}
