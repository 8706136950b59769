package plot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var palette = map[string]color.RGBA{
	"red":   {R: 255, A: 255},
	"green": {G: 128, A: 255},
	"blue":  {B: 255, A: 255},
	"black": {A: 255},
	"gray":  {R: 128, G: 128, B: 128, A: 255},
}

var markers = map[string]draw.GlyphDrawer{
	"circle":   draw.CircleGlyph{},
	"ring":     draw.RingGlyph{},
	"square":   draw.SquareGlyph{},
	"box":      draw.BoxGlyph{},
	"triangle": draw.TriangleGlyph{},
	"cross":    draw.CrossGlyph{},
	"plus":     draw.PlusGlyph{},
}

// Style describes how a sampled series is drawn: a connecting line plus a
// marker on every sample.
type Style struct {
	Color        string  `yaml:"color" json:"color"`
	Marker       string  `yaml:"marker" json:"marker"`
	LineWidth    float64 `yaml:"line_width" json:"line_width"`
	MarkerRadius float64 `yaml:"marker_radius" json:"marker_radius"`
}

var DefaultStyle = Style{
	Color:        "red",
	Marker:       "circle",
	LineWidth:    2,
	MarkerRadius: 3,
}

func (s Style) Validate() error {
	if _, ok := palette[strings.ToLower(s.Color)]; !ok {
		return fmt.Errorf("unknown color %q", s.Color)
	}
	if _, ok := markers[strings.ToLower(s.Marker)]; !ok {
		return fmt.Errorf("unknown marker %q", s.Marker)
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %v", s.LineWidth)
	}
	if s.MarkerRadius <= 0 {
		return fmt.Errorf("marker radius must be positive, got %v", s.MarkerRadius)
	}
	return nil
}

func (s Style) rgba() color.RGBA {
	return palette[strings.ToLower(s.Color)]
}

func (s Style) lineStyle() draw.LineStyle {
	return draw.LineStyle{Color: s.rgba(), Width: vg.Points(s.LineWidth)}
}

func (s Style) glyphStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  s.rgba(),
		Radius: vg.Points(s.MarkerRadius),
		Shape:  markers[strings.ToLower(s.Marker)],
	}
}
