package wheel

import (
	"math"
	"strconv"
	"strings"
)

const (
	labelMaxRunes  = 15
	labelKeepRunes = 13
	labelEllipsis  = "..."
	labelRadius    = 0.7
	fullCircle     = 360.0
	sweepEpsilon   = 1e-9
)

// DefaultPalette is cycled by segment position so repeated renders of the same
// list keep their colours.
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B739", "#52C97F",
}

const DefaultWinnerColor = "#FFD700"

type Style struct {
	Size        float64  `json:"size" yaml:"size"`
	Radius      float64  `json:"radius" yaml:"radius"`
	Palette     []string `json:"palette" yaml:"palette"`
	WinnerColor string   `json:"winner_color" yaml:"winner_color"`
}

func DefaultStyle() Style {
	return Style{
		Size:        400,
		Radius:      180,
		Palette:     DefaultPalette,
		WinnerColor: DefaultWinnerColor,
	}
}

func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Size <= 0 {
		s.Size = d.Size
	}
	if s.Radius <= 0 || s.Radius > s.Size/2 {
		s.Radius = math.Min(d.Radius, s.Size/2)
	}
	if len(s.Palette) == 0 {
		s.Palette = d.Palette
	}
	if s.WinnerColor == "" {
		s.WinnerColor = d.WinnerColor
	}
	return s
}

// Arc is the angular extent of one segment in degrees, 0 at the top and
// increasing clockwise.
type Arc struct {
	Start float64 `json:"start"`
	Sweep float64 `json:"sweep"`
}

func (a Arc) End() float64 { return a.Start + a.Sweep }
func (a Arc) Mid() float64 { return a.Start + a.Sweep/2 }

// Arcs lays the options out around the wheel in list order.
func Arcs(options []Option) []Arc {
	if len(options) == 0 {
		return nil
	}
	weights, total := effectiveWeights(options)
	arcs := make([]Arc, len(options))
	var start float64
	for i, w := range weights {
		sweep := w / total * fullCircle
		arcs[i] = Arc{Start: start, Sweep: sweep}
		start += sweep
	}
	return arcs
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Label struct {
	Text     string  `json:"text"`
	Position Point   `json:"position"`
	Rotation float64 `json:"rotation"`
}

type Segment struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Start       float64 `json:"start"`
	Sweep       float64 `json:"sweep"`
	Color       string  `json:"color"`
	Highlighted bool    `json:"highlighted"`
	LargeArc    bool    `json:"large_arc"`
	Path        string  `json:"path"`
	Label       Label   `json:"label"`
}

func (s Segment) End() float64 { return s.Start + s.Sweep }
func (s Segment) Mid() float64 { return s.Start + s.Sweep/2 }

// Wheel is one rendered state of the wheel. Rotation is in degrees and turns
// the wheel counter-clockwise, opposite to the segment layout, so that growing
// rotation walks the segments under the pointer in list order.
type Wheel struct {
	Style     Style     `json:"style"`
	Rotation  float64   `json:"rotation"`
	Highlight *int      `json:"highlight,omitempty"`
	Segments  []Segment `json:"segments"`
}

func (w Wheel) Empty() bool { return len(w.Segments) == 0 }

func (w Wheel) Center() Point {
	c := w.Style.Size / 2
	return Point{X: c, Y: c}
}

// SegmentAt returns the index of the segment under the pointer for the given
// rotation, or -1 for an empty wheel.
func (w Wheel) SegmentAt(rotation float64) int {
	if w.Empty() {
		return -1
	}
	a := math.Mod(rotation, fullCircle)
	if a < 0 {
		a += fullCircle
	}
	for _, s := range w.Segments {
		if a >= s.Start && a < s.End() {
			return s.Index
		}
	}
	return w.Segments[len(w.Segments)-1].Index
}

// Render computes the geometry of the wheel at the given rotation. A non-nil
// highlight paints that segment with the winner colour. An empty option list
// yields an empty placeholder wheel.
func Render(options []Option, rotation float64, highlight *int, style Style) Wheel {
	style = style.withDefaults()
	w := Wheel{
		Style:     style,
		Rotation:  rotation,
		Highlight: highlight,
		Segments:  []Segment{},
	}

	center := w.Center()
	for i, arc := range Arcs(options) {
		seg := Segment{
			Index:    i,
			Name:     options[i].Name,
			Weight:   options[i].Weight,
			Start:    arc.Start,
			Sweep:    arc.Sweep,
			Color:    style.Palette[i%len(style.Palette)],
			LargeArc: arc.Sweep > 180,
		}
		if highlight != nil && *highlight == i {
			seg.Color = style.WinnerColor
			seg.Highlighted = true
		}
		seg.Path = wedgePath(center, style.Radius, arc)
		seg.Label = Label{
			Text:     TruncateLabel(options[i].Name),
			Position: polar(center, style.Radius*labelRadius, arc.Mid()),
			Rotation: arc.Mid(),
		}
		w.Segments = append(w.Segments, seg)
	}
	return w
}

// TruncateLabel shortens names longer than 15 characters to 13 characters
// followed by an ellipsis.
func TruncateLabel(name string) string {
	r := []rune(name)
	if len(r) <= labelMaxRunes {
		return name
	}
	return string(r[:labelKeepRunes]) + labelEllipsis
}

// polar converts a wheel angle (0 at top, clockwise) to SVG coordinates.
func polar(c Point, r, angle float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: c.X + r*math.Cos(rad),
		Y: c.Y + r*math.Sin(rad),
	}
}

func wedgePath(c Point, r float64, arc Arc) string {
	var b strings.Builder
	rs := num(r)

	if arc.Sweep >= fullCircle-sweepEpsilon {
		// an arc whose end points coincide draws nothing, so split it in two
		top := polar(c, r, arc.Start)
		bottom := polar(c, r, arc.Start+180)
		b.WriteString("M " + num(top.X) + " " + num(top.Y))
		b.WriteString(" A " + rs + " " + rs + " 0 1 1 " + num(bottom.X) + " " + num(bottom.Y))
		b.WriteString(" A " + rs + " " + rs + " 0 1 1 " + num(top.X) + " " + num(top.Y))
		b.WriteString(" Z")
		return b.String()
	}

	from := polar(c, r, arc.Start)
	to := polar(c, r, arc.End())
	large := "0"
	if arc.Sweep > 180 {
		large = "1"
	}
	b.WriteString("M " + num(c.X) + " " + num(c.Y))
	b.WriteString(" L " + num(from.X) + " " + num(from.Y))
	b.WriteString(" A " + rs + " " + rs + " 0 " + large + " 1 " + num(to.X) + " " + num(to.Y))
	b.WriteString(" Z")
	return b.String()
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
