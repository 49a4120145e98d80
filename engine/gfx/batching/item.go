package batching

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/hubastard/spritebatch/engine/core"
)

// RenderEffects mirrors the sampled texture region.
type RenderEffects uint8

const (
	EffectNone RenderEffects = iota
	EffectFlipHorizontal
	EffectFlipVertical
	EffectFlipBoth
)

// BatchItem describes one textured quad.
type BatchItem struct {
	SrcRect  core.Rect // pixels in the source texture
	DestRect core.Rect // X/Y is the quad centre on the render surface
	Scale    float32
	Angle    float32 // degrees, clockwise (Y points down)
	Tint     colors.Color
	Effects  RenderEffects

	TextureID    uint32
	TextureSize  core.Size
	ViewportSize core.Size
}

// IsEmpty reports whether the item was never filled in.
func (it BatchItem) IsEmpty() bool { return it.TextureID == 0 }

// GlyphItem is one character quad sampled from a font atlas.
type GlyphItem struct {
	BatchItem
	Glyph rune
}

// Vertex: pos2 (NDC) + uv2 + color4 => 8 floats
const (
	VertexStride  = 8
	VertsPerQuad  = 4
	IndsPerQuad   = 6
	FloatsPerQuad = VertexStride * VertsPerQuad
)

type Vertex struct {
	X, Y  float32
	U, V  float32
	Color [4]float32
}

// Quad returns the corners in TL, TR, BR, BL order.
func (it BatchItem) Quad() [4]Vertex {
	halfW := it.DestRect.W * it.Scale * 0.5
	halfH := it.DestRect.H * it.Scale * 0.5

	u0, v0, u1, v1 := it.uvs()
	switch it.Effects {
	case EffectFlipHorizontal:
		u0, u1 = u1, u0
	case EffectFlipVertical:
		v0, v1 = v1, v0
	case EffectFlipBoth:
		u0, u1 = u1, u0
		v0, v1 = v1, v0
	}

	// Positive Y goes down so top is -halfH.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{halfW, halfH, u1, v1},
		{-halfW, halfH, u0, v1},
	}
	s, c := math32.Sincos(it.Angle * math32.Pi / 180)
	tint := it.Tint.Normalized()

	var out [4]Vertex
	for i, p := range corners {
		px := p[0]*c - p[1]*s + it.DestRect.X
		py := p[0]*s + p[1]*c + it.DestRect.Y
		nx, ny := toNDC(px, py, it.ViewportSize)
		out[i] = Vertex{X: nx, Y: ny, U: p[2], V: p[3], Color: tint}
	}
	return out
}

// AppendQuad appends the quad's interleaved vertex data to dst.
func (it BatchItem) AppendQuad(dst []float32) []float32 {
	for _, v := range it.Quad() {
		dst = append(dst, v.X, v.Y, v.U, v.V, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}
	return dst
}

// QuadIndices returns the two triangles of the quad stored at slot.
func QuadIndices(slot int) [IndsPerQuad]uint32 {
	b := uint32(slot * VertsPerQuad)
	return [IndsPerQuad]uint32{b, b + 1, b + 2, b + 2, b + 3, b}
}

func (it BatchItem) uvs() (u0, v0, u1, v1 float32) {
	tw, th := float32(it.TextureSize.Width), float32(it.TextureSize.Height)
	if tw <= 0 || th <= 0 {
		return 0, 0, 1, 1
	}
	r := it.SrcRect
	return r.X / tw, r.Y / th, (r.X + r.W) / tw, (r.Y + r.H) / th
}

// toNDC maps surface pixels (origin top-left, Y down) to [-1..1] with Y up.
func toNDC(x, y float32, vp core.Size) (float32, float32) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0
	}
	return x/float32(vp.Width)*2 - 1, 1 - y/float32(vp.Height)*2
}

// Texture returns the texture the item samples from.
func (it BatchItem) Texture() uint32 { return it.TextureID }
