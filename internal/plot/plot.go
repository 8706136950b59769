// Package plot renders sampled series as a connected scatter plot.
package plot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/heaviside/internal/sweep"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

var ErrNoPoints = errors.New("nothing to plot")

// axisPadding keeps markers on the 0 and 1 levels clear of the frame.
const axisPadding = 0.1

var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "svg": true, "pdf": true, "eps": true, "tif": true, "tiff": true,
}

type Plot struct {
	p *gonumplot.Plot
}

func New(points sweep.Points, style Style, title string) (*Plot, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	p := gonumplot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "θ(x)"
	p.Add(plotter.NewGrid())

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return nil, fmt.Errorf("build series: %w", err)
	}
	line.LineStyle = style.lineStyle()
	scatter.GlyphStyle = style.glyphStyle()
	p.Add(line, scatter)

	ys := points.YS()
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo, hi = min(lo, y), max(hi, y)
	}
	p.Y.Min, p.Y.Max = lo-axisPadding, hi+axisPadding

	return &Plot{p: p}, nil
}

// Render writes the plot in the given format (png, svg, pdf, ...).
func (pl *Plot) Render(w io.Writer, format string, width, height vg.Length) error {
	format = strings.ToLower(format)
	if !supportedFormats[format] {
		return fmt.Errorf("unsupported format %q", format)
	}
	wt, err := pl.p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("prepare %s canvas: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Save infers the format from the file extension.
func (pl *Plot) Save(path string, width, height vg.Length) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !supportedFormats[strings.ToLower(format)] {
		return fmt.Errorf("unsupported plot file extension %q", filepath.Ext(path))
	}
	if err := pl.p.Save(width, height, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// Image rasterises the plot for on-screen display.
func (pl *Plot) Image(width, height vg.Length) image.Image {
	c := vgimg.New(width, height)
	pl.p.Draw(draw.New(c))
	return c.Image()
}
