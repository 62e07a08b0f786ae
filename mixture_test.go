package modefit

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestParamsVectorRoundTrip(t *testing.T) {
	p := Params{Mean1: 0.3, Mean2: 3.7, LogVar1: -0.2, LogVar2: 0.5, Logit1: 0.1, Logit2: -0.1}
	got := fromVector(p.vector())
	if got != p {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestParamsGridMatchesProb(t *testing.T) {
	// With zero logits the weights are exactly 0.5/0.5 and sum to 1, so the
	// unnormalized grid values coincide with the pointwise density.
	g := DefaultGrid
	p := Params{Mean1: 1, Mean2: 4, LogVar1: 0, LogVar2: math.Log(0.4)}
	d := p.Grid(g)
	for i := 0; i < len(d); i += 100 {
		x := g.Min + float64(i)*g.Step
		if math.Abs(d[i]-p.Prob(x)) > 1e-14 {
			t.Errorf("grid/prob mismatch at x=%v: %v vs %v", x, d[i], p.Prob(x))
		}
	}
}

func TestParamsLogProbConsistent(t *testing.T) {
	p := Params{Mean1: 0.5, Mean2: 3, LogVar1: 0.2, LogVar2: -0.5, Logit1: 0.3, Logit2: -0.7}
	for _, x := range []float64{-3, 0, 1, 2.5, 4, 8} {
		want := p.Prob(x)
		got := math.Exp(p.LogProb(x))
		if math.Abs(got-want) > 1e-12*math.Max(1, want) {
			t.Errorf("exp(LogProb(%v)) = %v, want %v", x, got, want)
		}
	}
}

func TestParamsRand(t *testing.T) {
	src := rand.NewPCG(3, 4)
	p := Params{Mean1: 0, Mean2: 2} // unit variances, 50/50 weights
	n := 4000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = p.Rand(src)
	}
	mean := floats.Sum(samples) / float64(n)
	if math.Abs(mean-1) > 0.2 {
		t.Errorf("sample mean = %v, want near 1", mean)
	}
}
