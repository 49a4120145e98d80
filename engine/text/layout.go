package text

import (
	"strings"
	"unicode"

	"github.com/chewxy/math32"
	"github.com/hubastard/spritebatch/engine/core"
)

// Placement is a glyph positioned on the render surface. Center is already
// scaled and rotated; the glyph quad itself still needs Scale and the angle.
type Placement struct {
	Glyph  GlyphMetrics
	Center core.Point
}

// Layout positions the visible glyphs of s so the text block is centred on
// (x, y). Lines split on '\n' and lose their trailing whitespace. Every line
// starts at the left edge of the block. angle rotates the block about (x, y)
// in degrees, clockwise on a Y-down surface.
func Layout(f Font, s string, x, y, scale, angle float32) []Placement {
	if scale < 0 {
		scale = 0
	}
	lines := glyphLines(f, s)
	if len(lines) == 0 {
		return nil
	}

	lineSpacing := f.LineSpacing() * scale
	var blockW float32
	for _, l := range lines {
		blockW = math32.Max(blockW, lineWidth(f, l, scale))
	}

	// Centre the first line's tallest glyph on its line, then the whole block on y.
	var tallest, descender float32
	for _, g := range lines[0] {
		tallest = math32.Max(tallest, g.Height*scale)
		descender = math32.Max(descender, g.Descender()*scale)
	}
	baseline := y - float32(len(lines)-1)*lineSpacing/2 + tallest/2 - descender
	left := x - blockW/2

	var sin, cos float32
	if angle != 0 {
		sin, cos = math32.Sincos(angle * math32.Pi / 180)
	}

	out := make([]Placement, 0, len(s))
	for _, line := range lines {
		pen := left
		for i, g := range line {
			if i > 0 && f.HasKerning() {
				pen += f.Kerning(line[i-1].Index, g.Index) * scale
			}
			if g.Visible() && !unicode.IsSpace(g.Rune) {
				c := core.Point{
					X: pen + (g.BearingX+g.Width/2)*scale,
					Y: baseline - (g.BearingY-g.Height/2)*scale,
				}
				if angle != 0 {
					dx, dy := c.X-x, c.Y-y
					c = core.Point{X: dx*cos - dy*sin + x, Y: dx*sin + dy*cos + y}
				}
				out = append(out, Placement{Glyph: g, Center: c})
			}
			pen += g.Advance * scale
		}
		baseline += lineSpacing
	}
	return out
}

// Measure returns the size of the block Layout would produce. The height
// runs from the top of the first line's highest glyph to the bottom of the
// last line's deepest descender.
func Measure(f Font, s string, scale float32) (width, height float32) {
	if scale < 0 {
		scale = 0
	}
	lines := glyphLines(f, s)
	if len(lines) == 0 {
		return 0, 0
	}
	for _, l := range lines {
		width = math32.Max(width, lineWidth(f, l, scale))
	}
	var above, below float32
	for _, g := range lines[0] {
		if g.Visible() {
			above = math32.Max(above, g.BearingY*scale)
		}
	}
	for _, g := range lines[len(lines)-1] {
		if g.Visible() {
			below = math32.Max(below, g.Descender()*scale)
		}
	}
	height = float32(len(lines)-1)*f.LineSpacing()*scale + above + below
	return width, height
}

// LineHeight is the baseline-to-baseline distance at scale.
func LineHeight(f Font, scale float32) float32 { return f.LineSpacing() * scale }

func lineWidth(f Font, line []GlyphMetrics, scale float32) float32 {
	var w float32
	for i, g := range line {
		if i > 0 && f.HasKerning() {
			w += f.Kerning(line[i-1].Index, g.Index) * scale
		}
		w += g.Advance * scale
	}
	return w
}

// glyphLines resolves each line to glyphs, substituting InvalidRune for
// characters the font lacks. Runes without any usable glyph are dropped.
func glyphLines(f Font, s string) [][]GlyphMetrics {
	if s == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([][]GlyphMetrics, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRightFunc(l, unicode.IsSpace)
		glyphs := make([]GlyphMetrics, 0, len(l))
		for _, r := range l {
			g, ok := f.Glyph(r)
			if !ok {
				if g, ok = f.Glyph(InvalidRune); !ok {
					continue
				}
			}
			glyphs = append(glyphs, g)
		}
		lines = append(lines, glyphs)
	}
	return lines
}
