package renderer2d

import "github.com/hubastard/spritebatch/engine/core"

// SubTexture is a pixel region of a texture, typically one sprite-sheet cell.
type SubTexture struct {
	Texture core.Texture
	Src     core.Rect
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex core.Texture, x, y, w, h int) SubTexture {
	return SubTexture{
		Texture: tex,
		Src:     core.Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)},
	}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex core.Texture, cx, cy, cw, ch int) SubTexture {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch)
}

// Frames splits a horizontal strip of n cells starting at row cy into subtextures.
func Frames(tex core.Texture, cy, cw, ch, n int) []SubTexture {
	out := make([]SubTexture, n)
	for i := range out {
		out[i] = FromGrid(tex, i, cy, cw, ch)
	}
	return out
}
