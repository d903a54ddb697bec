package wheel

import (
	"html"
	"io"
	"strings"
)

const (
	hubRadius     = 30
	pointerWidth  = 15
	pointerHeight = 30
	labelFontSize = 14
)

// SVG encodes the wheel. The segment group is rotated by -Rotation; the hub and
// the pointer stay fixed.
func (w Wheel) SVG() string {
	var b strings.Builder
	_, _ = w.WriteSVG(&b)
	return b.String()
}

func (w Wheel) WriteSVG(out io.Writer) (int64, error) {
	var b strings.Builder
	size := num(w.Style.Size)

	if w.Empty() {
		b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="` + size + `" height="` + size + `"></svg>`)
		n, err := io.WriteString(out, b.String())
		return int64(n), err
	}

	c := w.Center()
	cx, cy := num(c.X), num(c.Y)

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="` + size + `" height="` + size +
		`" viewBox="0 0 ` + size + ` ` + size + `">`)
	b.WriteString(`<g class="wheel" transform="rotate(` + num(-w.Rotation) + ` ` + cx + ` ` + cy + `)">`)
	b.WriteString(`<circle cx="` + cx + `" cy="` + cy + `" r="` + num(w.Style.Radius) +
		`" fill="none" stroke="#333" stroke-width="4"/>`)

	for _, s := range w.Segments {
		b.WriteString(`<path d="` + s.Path + `" fill="` + html.EscapeString(s.Color) + `" stroke="#fff" stroke-width="2"`)
		if s.Highlighted {
			b.WriteString(` class="winner"`)
		}
		b.WriteString(`/>`)
	}
	for _, s := range w.Segments {
		x, y := num(s.Label.Position.X), num(s.Label.Position.Y)
		b.WriteString(`<text x="` + x + `" y="` + y + `" font-size="` + num(labelFontSize) +
			`" font-weight="bold" text-anchor="middle" transform="rotate(` + num(s.Label.Rotation) +
			` ` + x + ` ` + y + `)" fill="#000">` + html.EscapeString(s.Label.Text) + `</text>`)
	}
	b.WriteString(`</g>`)

	b.WriteString(`<circle cx="` + cx + `" cy="` + cy + `" r="` + num(hubRadius) +
		`" fill="#333" stroke="` + DefaultWinnerColor + `" stroke-width="3"/>`)
	b.WriteString(`<text x="` + cx + `" y="` + num(c.Y+5) +
		`" font-size="20" font-weight="bold" text-anchor="middle" fill="` + DefaultWinnerColor + `">SPIN</text>`)

	top := c.Y - w.Style.Radius - pointerHeight/2
	b.WriteString(`<polygon class="pointer" points="` +
		num(c.X-pointerWidth) + `,` + num(top) + ` ` +
		num(c.X+pointerWidth) + `,` + num(top) + ` ` +
		cx + `,` + num(top+pointerHeight) + `" fill="#FF0000"/>`)
	b.WriteString(`</svg>`)

	n, err := io.WriteString(out, b.String())
	return int64(n), err
}
