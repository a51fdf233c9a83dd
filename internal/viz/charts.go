package viz

import (
	"bytes"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// encodePlot flattens a plot to PNG bytes.
func encodePlot(p *plot.Plot) ([]byte, error) {
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHistogram draws a 10-bin histogram over the answer's numeric tokens.
// Fewer than two values render nothing.
func renderHistogram(answer string) ([]byte, error) {
	vals := numericTokens(answer)
	if len(vals) < 2 {
		return nil, nil
	}

	p := plot.New()
	p.X.Label.Text = "Values"
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(vals), 10)
	if err != nil {
		return nil, err
	}
	h.FillColor = randomColor()
	p.Add(h)

	return encodePlot(p)
}

// sinCosGrid is the fixed demonstration surface sin(x)·cos(y) sampled on a
// 100×100 grid over [-3,3]².
type sinCosGrid struct{}

func (sinCosGrid) Dims() (c, r int) { return 100, 100 }
func (sinCosGrid) X(c int) float64  { return -3 + 6*float64(c)/99 }
func (sinCosGrid) Y(r int) float64  { return -3 + 6*float64(r)/99 }
func (g sinCosGrid) Z(c, r int) float64 {
	return math.Sin(g.X(c)) * math.Cos(g.Y(r))
}

// renderContour ignores the answer entirely and draws the fixed contour
// demonstration plot.
func renderContour() ([]byte, error) {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewContour(sinCosGrid{}, nil, palette.Heat(16, 1)))
	return encodePlot(p)
}

const maxChartValues = 12

// renderBarChart draws the answer's leading numeric tokens as bars.
func renderBarChart(answer string) ([]byte, error) {
	vals := numericTokens(answer)
	if len(vals) < 2 {
		return nil, nil
	}
	if len(vals) > maxChartValues {
		vals = vals[:maxChartValues]
	}

	p := plot.New()
	p.Y.Label.Text = "Value"

	b, err := plotter.NewBarChart(plotter.Values(vals), vg.Points(24))
	if err != nil {
		return nil, err
	}
	b.Color = randomColor()
	p.Add(b)

	return encodePlot(p)
}

// renderLineGraph draws the numeric tokens as a series in answer order.
func renderLineGraph(answer string) ([]byte, error) {
	vals := numericTokens(answer)
	if len(vals) < 2 {
		return nil, nil
	}

	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	p := plot.New()
	p.Y.Label.Text = "Value"

	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = randomColor()
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	return encodePlot(p)
}
