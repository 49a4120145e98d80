package colors

// Color is an 8-bit RGBA tint. The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

var (
	White          = Color{255, 255, 255, 255}
	Red            = Color{255, 0, 0, 255}
	Green          = Color{0, 255, 0, 255}
	Blue           = Color{0, 0, 255, 255}
	Black          = Color{0, 0, 0, 255}
	Magenta        = Color{255, 0, 255, 255}
	Cyan           = Color{0, 255, 255, 255}
	Yellow         = Color{255, 255, 0, 255}
	Gray           = Color{128, 128, 128, 255}
	DarkGray       = Color{20, 26, 31, 255}
	CornflowerBlue = Color{100, 149, 237, 255}
	Transparent    = Color{}
)

// RGBA builds a color from its channels.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Normalized returns the channels scaled to [0..1] in RGBA order, the layout
// the vertex shaders expect.
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
