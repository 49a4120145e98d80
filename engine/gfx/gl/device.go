package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/spritebatch/engine/core"
)

// Device implements core.Device on an OpenGL 3.3 core context. The context
// must be current on the calling thread.
type Device struct {
	win      core.Window
	textures map[uint32]*Texture
}

func NewDevice(win core.Window, cfg core.Config) (*Device, error) {
	d := &Device{win: win, textures: map[uint32]*Texture{}}
	w, h := win.FramebufferSize()
	d.SetViewportSize(core.Size{Width: w, Height: h})
	core.Logger().Info("GL device",
		"vendor", gl.GoStr(gl.GetString(gl.VENDOR)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"version", gl.GoStr(gl.GetString(gl.VERSION)))
	return d, nil
}

func (d *Device) ActiveTexture(unit core.TextureUnit) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (d *Device) BindTexture(target core.TextureTarget, id uint32) {
	gl.BindTexture(glTarget(target), id)
}

func (d *Device) DrawElements(mode core.Primitive, count int, typ core.IndexType, offset int) {
	gl.DrawElements(glPrimitive(mode), int32(count), glIndexType(typ), gl.PtrOffset(offset))
}

func (d *Device) Enable(c core.Capability) {
	gl.Enable(glCapability(c))
}

func (d *Device) BlendFunc(src, dst core.BlendFactor) {
	gl.BlendFunc(glBlend(src), glBlend(dst))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) ViewportSize() core.Size {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return core.Size{Width: int(vp[2]), Height: int(vp[3])}
}

func (d *Device) SetViewportSize(s core.Size) {
	gl.Viewport(0, 0, int32(s.Width), int32(s.Height))
}

// Texture is a GL_TEXTURE_2D owned by a Device.
type Texture struct {
	name string
	id   uint32
	w, h int
}

// ID is 0 for a nil texture, which the renderer treats as unset.
func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Texture) Width() int {
	if t == nil {
		return 0
	}
	return t.w
}

func (t *Texture) Height() int {
	if t == nil {
		return 0
	}
	return t.h
}

func (t *Texture) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (d *Device) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture %q: invalid size %dx%d", desc.Name, desc.Width, desc.Height)
	}
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("texture %q: unsupported format %d", desc.Name, desc.Format)
	}
	if len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture %q: have %d bytes, want %d", desc.Name, len(desc.Pixels), desc.Width*desc.Height*4)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t := &Texture{name: desc.Name, id: id, w: desc.Width, h: desc.Height}
	d.textures[id] = t
	core.Logger().Debug("texture created", "name", desc.Name, "id", id, "width", desc.Width, "height", desc.Height)
	return t, nil
}

// DeleteTexture releases tex. Textures still alive at Shutdown are released then.
func (d *Device) DeleteTexture(tex core.Texture) {
	if tex == nil {
		return
	}
	id := tex.ID()
	if id == 0 {
		return
	}
	if _, ok := d.textures[id]; !ok {
		return
	}
	gl.DeleteTextures(1, &id)
	delete(d.textures, id)
}

func (d *Device) Shutdown() {
	for id := range d.textures {
		gl.DeleteTextures(1, &id)
	}
	clear(d.textures)
}

func glTarget(core.TextureTarget) uint32 { return gl.TEXTURE_2D }

func glPrimitive(core.Primitive) uint32 { return gl.TRIANGLES }

func glIndexType(core.IndexType) uint32 { return gl.UNSIGNED_INT }

func glCapability(c core.Capability) uint32 {
	switch c {
	case core.CapDepthTest:
		return gl.DEPTH_TEST
	default:
		return gl.BLEND
	}
}

func glBlend(f core.BlendFactor) uint32 {
	switch f {
	case core.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case core.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}

func glFilter(f core.Filter) int32 {
	if f == core.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(w core.Wrap) int32 {
	if w == core.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
