package text

import "github.com/hubastard/spritebatch/engine/core"

type fakeTexture struct {
	id   uint32
	w, h int
}

func (t fakeTexture) ID() uint32  { return t.id }
func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

type fakeTextureFactory struct {
	descs []core.TextureDesc
	err   error
}

func (f *fakeTextureFactory) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.descs = append(f.descs, desc)
	return fakeTexture{id: uint32(len(f.descs)), w: desc.Width, h: desc.Height}, nil
}

// fakeFont: every letter is 10x20 with 5px below the baseline and a 12px
// advance; 'g' is taller and deeper. Spaces advance 6px.
type fakeFont struct {
	glyphs      map[rune]GlyphMetrics
	kerning     map[[2]uint32]float32
	lineSpacing float32
}

func newFakeFont() *fakeFont {
	f := &fakeFont{glyphs: map[rune]GlyphMetrics{}, kerning: map[[2]uint32]float32{}, lineSpacing: 30}
	for i, r := range "abcdefhijklmnopqrstuvwxy" + string(InvalidRune) {
		f.glyphs[r] = GlyphMetrics{
			Rune: r, Index: uint32(i + 1),
			Bounds:  core.Rect{X: float32(i * 10), Y: 0, W: 10, H: 20},
			Advance: 12, BearingX: 0, BearingY: 15, Width: 10, Height: 20,
		}
	}
	f.glyphs['g'] = GlyphMetrics{
		Rune: 'g', Index: 100,
		Bounds:  core.Rect{X: 0, Y: 20, W: 10, H: 24},
		Advance: 12, BearingY: 14, Width: 10, Height: 24,
	}
	f.glyphs[' '] = GlyphMetrics{Rune: ' ', Index: 101, Advance: 6}
	return f
}

func (f *fakeFont) Atlas() core.Texture { return fakeTexture{id: 9, w: 256, h: 256} }

func (f *fakeFont) Glyph(r rune) (GlyphMetrics, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

func (f *fakeFont) HasKerning() bool { return len(f.kerning) > 0 }

func (f *fakeFont) Kerning(left, right uint32) float32 { return f.kerning[[2]uint32{left, right}] }

func (f *fakeFont) LineSpacing() float32 { return f.lineSpacing }
