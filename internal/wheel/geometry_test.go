package wheel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepSum(w Wheel) float64 {
	var sum float64
	for _, s := range w.Segments {
		sum += s.Sweep
	}
	return sum
}

func TestRenderExampleSweeps(t *testing.T) {
	options := []Option{{"A", 10}, {"B", 10}, {"C", 80}}
	w := Render(options, 0, nil, DefaultStyle())

	require.Len(t, w.Segments, 3)
	assert.InDelta(t, 36, w.Segments[0].Sweep, 1e-9)
	assert.InDelta(t, 36, w.Segments[1].Sweep, 1e-9)
	assert.InDelta(t, 288, w.Segments[2].Sweep, 1e-9)

	c := w.Segments[2]
	assert.InDelta(t, 72, c.Start, 1e-9)
	assert.InDelta(t, 360, c.End(), 1e-9)
	assert.True(t, c.LargeArc)
	assert.False(t, w.Segments[0].LargeArc)
	assert.Contains(t, c.Path, " 0 1 1 ")
	assert.Contains(t, w.Segments[0].Path, " 0 0 1 ")
}

func TestRenderSweepsSumTo360(t *testing.T) {
	lists := [][]Option{
		{{"A", 1}},
		{{"A", 1}, {"B", 2}},
		{{"A", 3}, {"B", 7}, {"C", 11}, {"D", 13}, {"E", 17}, {"F", 19}, {"G", 23}},
		{{"A", 0}, {"B", 0}, {"C", 0}},
		{{"A", 100}, {"B", 1}, {"C", 1}},
	}
	for _, options := range lists {
		w := Render(options, 0, nil, DefaultStyle())
		assert.InDelta(t, 360, sweepSum(w), 1e-9)
		last := w.Segments[len(w.Segments)-1]
		assert.InDelta(t, 360, last.End(), 1e-9)
	}
}

func TestRenderOrderStable(t *testing.T) {
	options := []Option{{"A", 5}, {"B", 15}, {"C", 30}, {"D", 50}}
	permuted := []Option{options[2], options[0], options[3], options[1]}

	sweepsByName := func(w Wheel) map[string]float64 {
		m := map[string]float64{}
		for _, s := range w.Segments {
			m[s.Name] = s.Sweep
		}
		return m
	}

	a := Render(options, 0, nil, DefaultStyle())
	b := Render(permuted, 0, nil, DefaultStyle())

	ma, mb := sweepsByName(a), sweepsByName(b)
	for name, sweep := range ma {
		assert.InDelta(t, sweep, mb[name], 1e-9, name)
	}
	assert.InDelta(t, 0.3*360, ma["C"], 1e-9)
	assert.InDelta(t, 0, b.Segments[0].Start, 1e-9)
	assert.Equal(t, "C", b.Segments[0].Name)
}

func TestRenderSingleOptionFullCircle(t *testing.T) {
	w := Render([]Option{{"Only", 5}}, 0, nil, DefaultStyle())
	require.Len(t, w.Segments, 1)

	s := w.Segments[0]
	assert.InDelta(t, 0, s.Start, 1e-9)
	assert.InDelta(t, 360, s.Sweep, 1e-9)
	assert.True(t, s.LargeArc)
	assert.Equal(t, 2, strings.Count(s.Path, " A "))
	assert.NotContains(t, s.Path, " L ")
}

func TestRenderPaletteCycles(t *testing.T) {
	var options []Option
	for i := 0; i < 12; i++ {
		options = append(options, Option{Name: string(rune('A' + i)), Weight: 1})
	}
	w := Render(options, 0, nil, DefaultStyle())
	for i, s := range w.Segments {
		assert.Equal(t, DefaultPalette[i%len(DefaultPalette)], s.Color)
	}
	assert.Equal(t, w.Segments[0].Color, w.Segments[10].Color)

	again := Render(options, 123, nil, DefaultStyle())
	for i := range w.Segments {
		assert.Equal(t, w.Segments[i].Color, again.Segments[i].Color)
		assert.Equal(t, w.Segments[i].Path, again.Segments[i].Path)
	}
}

func TestRenderHighlight(t *testing.T) {
	options := []Option{{"A", 1}, {"B", 1}, {"C", 1}}
	hl := 1
	w := Render(options, 0, &hl, DefaultStyle())

	assert.Equal(t, DefaultWinnerColor, w.Segments[1].Color)
	assert.True(t, w.Segments[1].Highlighted)
	assert.False(t, w.Segments[0].Highlighted)
	assert.Equal(t, DefaultPalette[0], w.Segments[0].Color)
	assert.Equal(t, DefaultPalette[2], w.Segments[2].Color)
}

func TestRenderEmpty(t *testing.T) {
	w := Render(nil, 45, nil, DefaultStyle())
	assert.True(t, w.Empty())
	assert.Equal(t, -1, w.SegmentAt(0))
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400"></svg>`, w.SVG())
}

func TestRenderZeroWeightsUniform(t *testing.T) {
	w := Render([]Option{{"A", 0}, {"B", 0}, {"C", 0}, {"D", 0}}, 0, nil, DefaultStyle())
	for _, s := range w.Segments {
		assert.InDelta(t, 90, s.Sweep, 1e-9)
	}
}

func TestRenderLabels(t *testing.T) {
	w := Render([]Option{{"A", 1}, {"B", 1}}, 0, nil, DefaultStyle())

	// first half is the right side of the wheel, label at 90 degrees
	a := w.Segments[0].Label
	assert.InDelta(t, 90, a.Rotation, 1e-9)
	assert.InDelta(t, 200+180*0.7, a.Position.X, 1e-9)
	assert.InDelta(t, 200, a.Position.Y, 1e-9)

	b := w.Segments[1].Label
	assert.InDelta(t, 270, b.Rotation, 1e-9)
	assert.InDelta(t, 200-180*0.7, b.Position.X, 1e-9)
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pizza", "Pizza"},
		{"Exactly15Chars!", "Exactly15Chars!"},
		{"Sixteen chars!!!", "Sixteen chars..."},
		{"The Cheesecake Factory", "The Cheesecak..."},
		{"ラーメン屋さんのとても長い名前です", "ラーメン屋さんのとても長い..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateLabel(tt.in), tt.in)
	}
}

func TestSegmentAt(t *testing.T) {
	w := Render([]Option{{"A", 10}, {"B", 10}, {"C", 80}}, 0, nil, DefaultStyle())

	assert.Equal(t, 0, w.SegmentAt(0))
	assert.Equal(t, 0, w.SegmentAt(18))
	assert.Equal(t, 1, w.SegmentAt(54))
	assert.Equal(t, 2, w.SegmentAt(200))
	assert.Equal(t, 2, w.SegmentAt(359.9))
	assert.Equal(t, 0, w.SegmentAt(360+18))
	assert.Equal(t, 2, w.SegmentAt(-10))
}

func TestStyleDefaults(t *testing.T) {
	w := Render([]Option{{"A", 1}}, 0, nil, Style{})
	assert.Equal(t, DefaultStyle().Size, w.Style.Size)
	assert.Equal(t, DefaultStyle().Radius, w.Style.Radius)

	small := Render([]Option{{"A", 1}}, 0, nil, Style{Size: 100, Radius: 500})
	assert.Equal(t, 50.0, small.Style.Radius)
}
