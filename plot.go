package optics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteReachabilityPlot renders a reachability plot to an image file (format
// chosen by the path's extension, e.g. .png or .svg). The x axis is the
// visitation order, the y axis the reachability distance; valleys in the
// curve are dense regions and peaks separate clusters.
//
// Entries without a reachability value (cluster seeds) are drawn at epsilon,
// or at the largest finite reachability when epsilon is not finite and
// positive, so the bars stay on scale instead of shooting to infinity.
func WriteReachabilityPlot(path string, entries []PlotEntry, epsilon float64) error {
	if len(entries) == 0 {
		return fmt.Errorf("optics: reachability plot is empty")
	}

	ceiling := epsilon
	if ceiling <= 0 || math.IsNaN(ceiling) || math.IsInf(ceiling, 1) {
		finite := make([]float64, 0, len(entries))
		for _, e := range entries {
			if e.Defined() {
				finite = append(finite, e.Reachability)
			}
		}
		if len(finite) > 0 {
			ceiling = floats.Max(finite)
		} else {
			ceiling = 1
		}
	}

	pts := make(plotter.XYs, len(entries))
	for i, e := range entries {
		y := e.Reachability
		if !e.Defined() || y > ceiling {
			y = ceiling
		}
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}

	p := plot.New()
	p.Title.Text = "Reachability plot"
	p.X.Label.Text = "visitation order"
	p.Y.Label.Text = "reachability distance"
	p.Y.Min = 0

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("optics: building reachability plot: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("optics: saving reachability plot: %w", err)
	}
	return nil
}
