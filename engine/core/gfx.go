package core

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Point is a 2D position in pixels.
type Point struct {
	X, Y float32
}

type TextureUnit uint32

const TextureUnit0 TextureUnit = 0

type TextureTarget uint32

const Texture2D TextureTarget = 1

type Capability uint32

const (
	CapBlend Capability = iota + 1
	CapDepthTest
)

type BlendFactor uint32

const (
	BlendOne BlendFactor = iota + 1
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

type Primitive uint32

const PrimitiveTriangles Primitive = 1

type IndexType uint32

const IndexUint32 IndexType = 1

// GL is the subset of the graphics API the 2D renderer issues directly.
// Implementations must only be called on the render thread.
type GL interface {
	ActiveTexture(unit TextureUnit)
	BindTexture(target TextureTarget, id uint32)
	DrawElements(mode Primitive, count int, typ IndexType, offset int)
	Enable(c Capability)
	BlendFunc(src, dst BlendFactor)
	ClearColor(r, g, b, a float32)
	Clear()
	ViewportSize() Size
	SetViewportSize(s Size)
}

// Texture is a GPU-resident image. ID 0 is never a valid texture.
type Texture interface {
	ID() uint32
	Width() int
	Height() int
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type Filter string

const (
	FilterNearest Filter = "nearest"
	FilterLinear  Filter = "linear"
)

type Wrap string

const (
	WrapClamp  Wrap = "clamp"
	WrapRepeat Wrap = "repeat"
)

// TextureDesc describes a texture upload. Pixels are tightly packed rows.
type TextureDesc struct {
	Name          string
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     Filter
	MagFilter     Filter
	WrapU, WrapV  Wrap
}

type TextureFactory interface {
	CreateTexture(desc TextureDesc) (Texture, error)
}
