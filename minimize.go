package modefit

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// Minimizer fits the candidate mixture to a target density by minimizing a
// selected objective over the six mixture parameters.
type Minimizer struct {
	// Grid is the shared evaluation grid. The zero value selects DefaultGrid.
	Grid GridConfig
	// Desire is the target density. The zero value selects DefaultDesire.
	Desire Desire
	// Src is the source for the randomized initialization. If nil, the
	// default in math/rand/v2 is used.
	Src rand.Source
}

// Minimize runs an unconstrained Nelder-Mead minimization of the named
// objective, starting from uniform[0,1) means and log-variances and zero
// logits (an initial 50/50 mixture guess). It returns the minimizing
// parameters and the loss there. The run is blocking and uses the
// optimizer's own default convergence settings.
func (m *Minimizer) Minimize(obj Objective) (Params, float64, error) {
	loss, err := lossFunc(obj)
	if err != nil {
		return Params{}, 0, err
	}

	g := m.Grid
	if g == (GridConfig{}) {
		g = DefaultGrid
	}
	desire := m.Desire
	if desire == (Desire{}) {
		desire = DefaultDesire
	}
	target := desire.Grid(g)

	uni := distuv.Uniform{Min: 0, Max: 1, Src: m.Src}
	x0 := make([]float64, nParams)
	for i := 0; i < 4; i++ {
		x0[i] = uni.Rand()
	}
	fmt.Println("initial parameters", x0)

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			p := fromVector(x)
			return loss(p.Grid(g), target) + WeightPenalty(p)
		},
	}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil {
		return Params{}, 0, err
	}
	if err = result.Status.Err(); err != nil {
		return Params{}, 0, err
	}
	return fromVector(result.X), result.F, nil
}
