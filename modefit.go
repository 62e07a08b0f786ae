// package modefit numerically contrasts two scalar objectives for fitting a
// two-component Gaussian mixture to a fixed bimodal target density (the
// "desire distribution"): a mass-covering divergence objective, which spreads
// the fitted mass across every target mode, and a mode-seeking evidence
// objective, which collapses the fitted mass onto a single mode. The contrast
// is discussed in
//
//	Tom Minka, "Divergence Measures and Message Passing",
//	Microsoft Research Technical Report MSR-TR-2005-173, 2005.
//
// Both objectives are evaluated on densities discretized onto a shared fixed
// grid and minimized with an unconstrained local optimizer. The mixing
// weights are kept valid by a quadratic penalty on their sum rather than by a
// hard constraint, so the whole parameter vector stays unconstrained.
package modefit

import "math"

// GridConfig specifies the fixed evaluation grid shared by every density in
// a run. The range is half-open: points are Min, Min+Step, ... up to but not
// including Max. GridConfig values are never mutated after creation.
type GridConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultGrid is the grid used by the reference scenario. It spans both
// modes of the desire distribution with wide tails on either side.
var DefaultGrid = GridConfig{Min: -5, Max: 10, Step: 0.01}

var (
	errLen  = "modefit: length mismatch"
	errGrid = "modefit: non-positive grid"
)

// Len returns the number of grid points.
func (g GridConfig) Len() int {
	n := int(math.Round((g.Max - g.Min) / g.Step))
	if n <= 0 {
		panic(errGrid)
	}
	return n
}

// Points returns the grid sample locations in increasing order. If dst is
// non-nil the points are stored in-place, otherwise a new slice is allocated.
func (g GridConfig) Points(dst []float64) []float64 {
	n := g.Len()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic(errLen)
	}
	for i := range dst {
		dst[i] = g.Min + float64(i)*g.Step
	}
	return dst
}

// sigmoid maps an unconstrained logit to a mixing weight in (0,1).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
