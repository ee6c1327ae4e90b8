// Package preview renders curves to vector and raster images using canvas, either drawn directly or as a gonum/plot or go-chart figure.
package preview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/easing"
)

// Options are the preview options. Dimensions are in millimeters.
type Options struct {
	Width       float64
	Height      float64
	Margin      float64
	Samples     int // number of segments the curve is sampled with
	StrokeWidth float64
	Color       color.RGBA
	Resolution  canvas.Resolution // for raster formats
}

// DefaultOptions are the default preview options.
var DefaultOptions = Options{
	Width:       80.0,
	Height:      80.0,
	Margin:      8.0,
	Samples:     200,
	StrokeWidth: 0.6,
	Color:       canvas.Steelblue,
	Resolution:  canvas.DPMM(8.0),
}

// Samples returns the curve's value at n+1 equidistant times from 0 to 1, as (t,value) points.
func Samples(e easing.Easer, n int) []canvas.Point {
	if n < 1 {
		n = 1
	}
	pts := make([]canvas.Point, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts[i] = canvas.Point{X: t, Y: e.Ease(t)}
	}
	return pts
}

// valueRange returns the range of the points' values, always including 0 and 1.
func valueRange(pts []canvas.Point) (float64, float64) {
	ymin, ymax := 0.0, 1.0
	for _, pt := range pts {
		if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			continue
		}
		ymin = math.Min(ymin, pt.Y)
		ymax = math.Max(ymax, pt.Y)
	}
	return ymin, ymax
}

// Draw draws the curve over the time range [0,1] horizontally. The vertical range spans [0,1] and is extended to include anticipation and overshoot, with dashed guides at the values 0 and 1.
func Draw(e easing.Easer, opts Options) *canvas.Canvas {
	pts := Samples(e, opts.Samples)
	ymin, ymax := valueRange(pts)

	w := opts.Width - 2.0*opts.Margin
	h := opts.Height - 2.0*opts.Margin
	x := func(t float64) float64 {
		return opts.Margin + t*w
	}
	y := func(v float64) float64 {
		return opts.Margin + (v-ymin)/(ymax-ymin)*h
	}

	c := canvas.New(opts.Width, opts.Height)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(opts.Width, opts.Height))

	// guides
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(canvas.Lightgray)
	ctx.SetStrokeWidth(opts.StrokeWidth / 2.0)
	ctx.SetDashes(0.0, 1.0, 1.0)
	ctx.DrawPath(x(0.0), y(0.0), canvas.Line(w, 0.0))
	ctx.DrawPath(x(0.0), y(1.0), canvas.Line(w, 0.0))
	ctx.DrawPath(x(0.0), y(ymin), canvas.Line(0.0, h))
	ctx.DrawPath(x(1.0), y(ymin), canvas.Line(0.0, h))
	ctx.SetDashes(0.0)

	poly := &canvas.Polyline{}
	for _, pt := range pts {
		if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			continue
		}
		poly.Add(x(pt.X), y(pt.Y))
	}
	ctx.SetStrokeColor(opts.Color)
	ctx.SetStrokeWidth(opts.StrokeWidth)
	ctx.DrawPath(0.0, 0.0, poly.ToPath())
	return c
}

// Write draws the curve and writes it to filename, the format is determined by the file extension.
func Write(filename string, e easing.Easer, opts Options) error {
	if err := renderers.Write(filename, Draw(e, opts), opts.Resolution); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
