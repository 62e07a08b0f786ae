// Package report renders a fitted candidate density against the desire
// distribution and persists the overlay as a figure named after the
// objective that produced the fit.
package report

import (
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/btracey/modefit"
)

// Filename returns the figure name for an objective, without a directory.
func Filename(obj modefit.Objective) string {
	return string(obj) + ".png"
}

// Save renders the normalized candidate density for params overlaid with
// the target density and writes the figure to dir/Filename(obj). The target
// curve is normalized for the divergence objective and left raw for the
// evidence objective; the raw curve keeps the collapsed fit visible against
// the target's modes. This asymmetry is display-only, the losses always
// compare normalized curves.
func Save(g modefit.GridConfig, desire modefit.Desire, params modefit.Params, obj modefit.Objective, dir string) error {
	if obj != modefit.Divergence && obj != modefit.Evidence {
		return modefit.ErrUnknownObjective
	}
	candidate := params.Grid(g).Normalize()
	target := desire.Grid(g)
	if obj == modefit.Divergence {
		target.Normalize()
	}

	xs := g.Points(nil)
	fitLine, err := plotter.NewLine(curve(xs, candidate))
	if err != nil {
		return err
	}
	fitLine.Color = color.RGBA{B: 255, A: 255}
	desireLine, err := plotter.NewLine(curve(xs, target))
	if err != nil {
		return err
	}
	desireLine.Color = color.RGBA{R: 255, A: 255}
	desireLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p := plot.New()
	p.Title.Text = string(obj)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"
	p.Add(fitLine, desireLine)
	p.Legend.Add("fit", fitLine)
	p.Legend.Add("desire", desireLine)
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, Filename(obj)))
}

func curve(xs []float64, d modefit.Density) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = d[i]
	}
	return pts
}
