package preview

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/easing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Plot returns a gonum plot of the curve sampled n times.
func Plot(e easing.Easer, title string, n int) (*plot.Plot, error) {
	pts := Samples(e, n)
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "value"
	p.X.Min, p.X.Max = 0.0, 1.0
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = canvas.Steelblue
	p.Add(line)
	return p, nil
}

// WritePlot draws the gonum plot of the curve on a canvas and writes it to filename, the format is determined by the file extension.
func WritePlot(filename string, e easing.Easer, title string, opts Options) error {
	p, err := Plot(e, title, opts.Samples)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	c := canvas.New(opts.Width, opts.Height)
	p.Draw(renderers.NewGonumPlot(c))
	if err := renderers.Write(filename, c, opts.Resolution); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
