package preview

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/easing"
	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders a go-chart line chart of the curve sampled n times as SVG to w.
func WriteChart(w io.Writer, e easing.Easer, title string, n int) error {
	pts := Samples(e, n)
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.X, pt.Y
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			Name:  "t",
			Range: &chart.ContinuousRange{Min: 0.0, Max: 1.0},
		},
		YAxis: chart.YAxis{
			Name: "value",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(renderers.NewGoChart(renderers.SVG()), w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}
