package modefit

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestMinimizeUnknownObjective(t *testing.T) {
	m := &Minimizer{}
	_, _, err := m.Minimize("bogus")
	if !errors.Is(err, ErrUnknownObjective) {
		t.Fatalf("got error %v, want ErrUnknownObjective", err)
	}
}

func TestMinimizeDivergenceCoversBothModes(t *testing.T) {
	m := &Minimizer{Src: rand.NewPCG(1, 1)}
	params, loss, err := m.Minimize(Divergence)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(loss) || loss < -1e-10 {
		t.Fatalf("bad final loss %v", loss)
	}

	w1, w2 := params.Weights()
	if math.Abs(w1+w2-1) > 1e-3 {
		t.Errorf("weight sum = %v, want 1 within penalty tolerance", w1+w2)
	}

	g := DefaultGrid
	fit := params.Grid(g).Normalize()
	modes := fit.Modes(g)
	if len(modes) != 2 {
		t.Fatalf("divergence fit has %v modes (%v), want 2", len(modes), modes)
	}
	if math.Abs(modes[0]-1) > 0.75 {
		t.Errorf("first mode at %v, want near 1", modes[0])
	}
	if math.Abs(modes[1]-4) > 0.75 {
		t.Errorf("second mode at %v, want near 4", modes[1])
	}

	// Neither mode may be starved of mass.
	left := fit.MassWithin(g, g.Min, 2.5)
	right := fit.MassWithin(g, 2.5, g.Max)
	if left < 0.1 || right < 0.1 {
		t.Errorf("mass split %v/%v, want non-negligible mass on both modes", left, right)
	}
}

func TestMinimizeEvidenceCollapsesToOneMode(t *testing.T) {
	m := &Minimizer{Src: rand.NewPCG(2, 2)}
	params, loss, err := m.Minimize(Evidence)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(loss) || loss < -1e-10 {
		t.Fatalf("bad final loss %v", loss)
	}

	w1, w2 := params.Weights()
	if math.Abs(w1+w2-1) > 1e-3 {
		t.Errorf("weight sum = %v, want 1 within penalty tolerance", w1+w2)
	}

	g := DefaultGrid
	fit := params.Grid(g).Normalize()
	modes := fit.Modes(g)
	if len(modes) != 1 {
		t.Fatalf("evidence fit has %v modes (%v), want 1", len(modes), modes)
	}
	mode := modes[0]
	if math.Abs(mode-1) > 0.75 && math.Abs(mode-4) > 0.75 {
		t.Errorf("collapsed mode at %v, want near 1 or 4", mode)
	}
	if mass := fit.MassWithin(g, mode-1, mode+1); mass < 0.9 {
		t.Errorf("mass within 1 of the mode = %v, want >= 0.9", mass)
	}
}
