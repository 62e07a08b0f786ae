package modefit

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// nParams is the length of the trainable parameter vector.
const nParams = 6

// Params holds the trainable parameters of the candidate mixture. Variances
// are carried in log space and weights as unconstrained logits, so the whole
// vector can be handed to an unconstrained minimizer. The mixing weights are
// sigmoid(Logit1) and sigmoid(Logit2); away from convergence they need not
// sum to 1, the objectives only steer the sum toward 1 through a penalty.
type Params struct {
	Mean1, Mean2     float64
	LogVar1, LogVar2 float64
	Logit1, Logit2   float64
}

// vector flattens the parameters in the order consumed by fromVector.
func (p Params) vector() []float64 {
	return []float64{p.Mean1, p.Mean2, p.LogVar1, p.LogVar2, p.Logit1, p.Logit2}
}

func fromVector(x []float64) Params {
	if len(x) != nParams {
		panic(errLen)
	}
	return Params{
		Mean1: x[0], Mean2: x[1],
		LogVar1: x[2], LogVar2: x[3],
		Logit1: x[4], Logit2: x[5],
	}
}

// Weights returns the mixing weights encoded by the logits.
func (p Params) Weights() (w1, w2 float64) {
	return sigmoid(p.Logit1), sigmoid(p.Logit2)
}

func (p Params) norms() (a, b distuv.Normal) {
	a = distuv.Normal{Mu: p.Mean1, Sigma: math.Sqrt(math.Exp(p.LogVar1))}
	b = distuv.Normal{Mu: p.Mean2, Sigma: math.Sqrt(math.Exp(p.LogVar2))}
	return a, b
}

// Grid evaluates the unnormalized candidate density on the grid. No
// normalization is applied here; callers divide by the sum before comparing
// against another density.
func (p Params) Grid(g GridConfig) Density {
	a, b := p.norms()
	w1, w2 := p.Weights()
	dst := make(Density, g.Len())
	for i := range dst {
		x := g.Min + float64(i)*g.Step
		dst[i] = w1*a.Prob(x) + w2*b.Prob(x)
	}
	return dst
}

// Prob returns the candidate density at x, with the weights renormalized to
// sum to 1 so the result is a valid density even away from convergence.
func (p Params) Prob(x float64) float64 {
	a, b := p.norms()
	w1, w2 := p.Weights()
	return (w1*a.Prob(x) + w2*b.Prob(x)) / (w1 + w2)
}

// LogProb returns the log of the candidate density at x.
func (p Params) LogProb(x float64) float64 {
	a, b := p.norms()
	w1, w2 := p.Weights()
	lse := floats.LogSumExp([]float64{
		math.Log(w1) + a.LogProb(x),
		math.Log(w2) + b.LogProb(x),
	})
	return lse - math.Log(w1+w2)
}

// Rand draws a sample from the candidate mixture, choosing a component with
// probability proportional to its weight.
func (p Params) Rand(src rand.Source) float64 {
	a, b := p.norms()
	a.Src = src
	b.Src = src
	w1, w2 := p.Weights()
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}
	if u.Rand()*(w1+w2) < w1 {
		return a.Rand()
	}
	return b.Rand()
}
