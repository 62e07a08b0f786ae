package modefit

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// Objective selects which loss the minimizer drives down.
type Objective string

const (
	// Divergence is the mass-covering objective: the discrete KL divergence
	// from the target to the candidate. The candidate pays wherever the
	// target carries mass that it does not, so the fit covers every mode.
	Divergence Objective = "divergence"
	// Evidence is the mode-seeking objective: the expected negative log
	// target density under the candidate. The loss is dominated by the
	// region where the candidate itself places mass, so the fit is free to
	// collapse onto the single easiest mode.
	Evidence Objective = "evidence"
)

// ErrUnknownObjective is returned when an objective name is neither
// Divergence nor Evidence.
var ErrUnknownObjective = errors.New(`modefit: objective is neither "divergence" nor "evidence"`)

// penaltyWeight scales the soft constraint on the mixing weight sum. It is
// large enough that at the optimum the weights sum to 1 to within numerical
// tolerance, while keeping the parameter vector unconstrained for the
// minimizer.
const penaltyWeight = 1e6

// WeightPenalty is the quadratic penalty on the deviation of the mixing
// weight sum from 1. It is exactly 0 for zero logits (a 50/50 mixture).
func WeightPenalty(p Params) float64 {
	w1, w2 := p.Weights()
	v := w1 + w2 - 1
	return penaltyWeight * v * v
}

// DivergenceLoss returns the KL divergence from the target to the candidate.
// Both densities are normalized to discrete probability vectors first; the
// inputs are not modified. A candidate value that underflows to exactly 0
// under target mass makes the loss infinite.
func DivergenceLoss(candidate, target Density) float64 {
	return stat.KullbackLeibler(normalized(target), normalized(candidate))
}

// EvidenceLoss returns the cross-entropy of the target under the candidate:
// the candidate-weighted average of the target's negative log density. Both
// densities are normalized first; the inputs are not modified.
func EvidenceLoss(candidate, target Density) float64 {
	return stat.CrossEntropy(normalized(candidate), normalized(target))
}

// lossFunc maps an objective name to its loss, without the weight penalty.
func lossFunc(obj Objective) (func(candidate, target Density) float64, error) {
	switch obj {
	case Divergence:
		return DivergenceLoss, nil
	case Evidence:
		return EvidenceLoss, nil
	}
	return nil, ErrUnknownObjective
}

func normalized(d Density) Density {
	c := make(Density, len(d))
	copy(c, d)
	return c.Normalize()
}
