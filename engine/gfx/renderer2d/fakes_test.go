package renderer2d

import (
	"testing"

	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	"github.com/hubastard/spritebatch/engine/reactive"
	"github.com/hubastard/spritebatch/engine/text"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	mode   core.Primitive
	count  int
	typ    core.IndexType
	offset int
}

type fakeGL struct {
	binds       []uint32
	activeUnits []core.TextureUnit
	draws       []drawCall
	enabled     []core.Capability
	blend       [][2]core.BlendFactor
	clearColors [][4]float32
	clears      int
	viewport    core.Size
	viewportSet []core.Size
	viewportGet int
}

func (g *fakeGL) ActiveTexture(unit core.TextureUnit) { g.activeUnits = append(g.activeUnits, unit) }
func (g *fakeGL) BindTexture(_ core.TextureTarget, id uint32) {
	g.binds = append(g.binds, id)
}
func (g *fakeGL) DrawElements(mode core.Primitive, count int, typ core.IndexType, offset int) {
	g.draws = append(g.draws, drawCall{mode, count, typ, offset})
}
func (g *fakeGL) Enable(c core.Capability) { g.enabled = append(g.enabled, c) }
func (g *fakeGL) BlendFunc(src, dst core.BlendFactor) {
	g.blend = append(g.blend, [2]core.BlendFactor{src, dst})
}
func (g *fakeGL) ClearColor(r, gg, b, a float32) {
	g.clearColors = append(g.clearColors, [4]float32{r, gg, b, a})
}
func (g *fakeGL) Clear() { g.clears++ }
func (g *fakeGL) ViewportSize() core.Size {
	g.viewportGet++
	return g.viewport
}
func (g *fakeGL) SetViewportSize(s core.Size) {
	g.viewport = s
	g.viewportSet = append(g.viewportSet, s)
}

func (g *fakeGL) drawCounts() []int {
	out := make([]int, len(g.draws))
	for i, d := range g.draws {
		out[i] = d.count
	}
	return out
}

type fakeShader struct{ uses, disposes int }

func (s *fakeShader) Use()     { s.uses++ }
func (s *fakeShader) Dispose() { s.disposes++ }

type upload[T any] struct {
	item T
	slot int
}

type fakeBuffer[T any] struct {
	uploads  []upload[T]
	disposes int
}

func (b *fakeBuffer[T]) Upload(item T, slot int) {
	b.uploads = append(b.uploads, upload[T]{item, slot})
}
func (b *fakeBuffer[T]) Dispose() { b.disposes++ }

type fakeTexture struct {
	id   uint32
	w, h int
}

func (t fakeTexture) ID() uint32  { return t.id }
func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

// ptrTexture has pointer receivers that read its fields, like a GPU
// texture handle.
type ptrTexture struct {
	id   uint32
	w, h int
}

func (t *ptrTexture) ID() uint32  { return t.id }
func (t *ptrTexture) Width() int  { return t.w }
func (t *ptrTexture) Height() int { return t.h }

// fakeFont has 10x20 glyphs for lowercase ascii with a 12px advance.
type fakeFont struct {
	atlas   core.Texture
	kerning bool
}

func (f fakeFont) Atlas() core.Texture { return f.atlas }

func (f fakeFont) Glyph(r rune) (text.GlyphMetrics, bool) {
	if r == ' ' {
		return text.GlyphMetrics{Rune: r, Index: 1, Advance: 6}, true
	}
	if (r < 'a' || r > 'z') && r != text.InvalidRune {
		return text.GlyphMetrics{}, false
	}
	return text.GlyphMetrics{
		Rune: r, Index: uint32(r),
		Bounds:  core.Rect{X: float32(r-'a') * 10, W: 10, H: 20},
		Advance: 12, BearingY: 15, Width: 10, Height: 20,
	}, true
}

func (f fakeFont) HasKerning() bool { return f.kerning }

func (f fakeFont) Kerning(left, right uint32) float32 { return -1 }

func (f fakeFont) LineSpacing() float32 { return 30 }

type harness struct {
	gl         *fakeGL
	ready      *reactive.Observable[core.ContextReady]
	texShader  *fakeShader
	fontShader *fakeShader
	texBuf     *fakeBuffer[batching.BatchItem]
	fontBuf    *fakeBuffer[batching.GlyphItem]
	sb         *SpriteBatch
}

func newHarness(t *testing.T, batchSize int) *harness {
	t.Helper()
	h := &harness{
		gl:         &fakeGL{viewport: core.Size{Width: 640, Height: 480}},
		ready:      reactive.NewObservable[core.ContextReady](),
		texShader:  &fakeShader{},
		fontShader: &fakeShader{},
		texBuf:     &fakeBuffer[batching.BatchItem]{},
		fontBuf:    &fakeBuffer[batching.GlyphItem]{},
	}
	sb, err := New(Config{
		GL:            h.gl,
		ContextReady:  h.ready,
		TextureShader: h.texShader,
		FontShader:    h.fontShader,
		TextureBuffer: h.texBuf,
		FontBuffer:    h.fontBuf,
		BatchSize:     batchSize,
		SurfaceWidth:  800,
		SurfaceHeight: 600,
	})
	require.NoError(t, err)
	h.sb = sb
	return h
}
