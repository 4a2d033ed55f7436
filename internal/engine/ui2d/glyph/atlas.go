// Package glyph rasterizes a bitmap font face into a single-channel
// texture atlas for the 2D renderer.
package glyph

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune = ' '
	lastRune  = '~'
	columns   = 16
	fallback  = '?'
)

// Atlas holds printable ASCII glyphs laid out on a fixed grid.
type Atlas struct {
	Image *image.Alpha
	CellW int
	CellH int
}

// Default builds an atlas from the 7x13 basic font.
func Default() *Atlas {
	f := basicfont.Face7x13
	return New(f, f.Advance, f.Height, f.Ascent)
}

// New rasterizes printable ASCII from face into cells of cellW x cellH,
// placing the baseline ascent pixels below each cell's top.
func New(face font.Face, cellW, cellH, ascent int) *Atlas {
	count := int(lastRune-firstRune) + 1
	rows := (count + columns - 1) / columns
	a := &Atlas{
		Image: image.NewAlpha(image.Rect(0, 0, columns*cellW, rows*cellH)),
		CellW: cellW,
		CellH: cellH,
	}

	for r := firstRune; r <= lastRune; r++ {
		cell := a.cell(r)
		dot := fixed.P(cell.Min.X, cell.Min.Y+ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.Draw(a.Image, dr.Intersect(cell), mask, maskp, draw.Src)
	}
	return a
}

func (a *Atlas) cell(r rune) image.Rectangle {
	if r < firstRune || r > lastRune {
		r = fallback
	}
	i := int(r - firstRune)
	x := (i % columns) * a.CellW
	y := (i / columns) * a.CellH
	return image.Rect(x, y, x+a.CellW, y+a.CellH)
}

// UV returns the texture coordinates of r's cell. Runes outside printable
// ASCII map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	c := a.cell(r)
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	return float32(c.Min.X) / w, float32(c.Min.Y) / h,
		float32(c.Max.X) / w, float32(c.Max.Y) / h
}

// Measure returns the size of text drawn at scale. Newlines start a new row.
func (a *Atlas) Measure(text string, scale float32) (width, height float32) {
	if text == "" {
		return 0, 0
	}
	lines, cols, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		widest = max(widest, cols)
	}
	return float32(widest*a.CellW) * scale, float32(lines*a.CellH) * scale
}
