package text

import "github.com/hubastard/spritebatch/engine/core"

// InvalidRune is drawn in place of characters the font has no glyph for.
const InvalidRune = '□'

// GlyphMetrics describes one glyph at the font's native size, in pixels.
type GlyphMetrics struct {
	Rune     rune
	Index    uint32    // glyph index in the font file, the kerning key
	Bounds   core.Rect // glyph image inside the atlas
	Advance  float32
	BearingX float32 // pen position to left edge
	BearingY float32 // baseline to top edge
	Width    float32
	Height   float32
}

// Descender is how far the glyph reaches below the baseline.
func (g GlyphMetrics) Descender() float32 { return g.Height - g.BearingY }

// Visible reports whether the glyph produces any pixels.
func (g GlyphMetrics) Visible() bool { return g.Width > 0 && g.Height > 0 }

// Font provides glyph data backed by a texture atlas.
type Font interface {
	Atlas() core.Texture
	Glyph(r rune) (GlyphMetrics, bool)
	HasKerning() bool
	// Kerning returns the horizontal adjustment between two glyph indices.
	Kerning(left, right uint32) float32
	LineSpacing() float32
}
