package renderer2d

import (
	"fmt"

	"github.com/hubastard/spritebatch/engine/cache"
	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	"github.com/hubastard/spritebatch/engine/profiler"
	"github.com/hubastard/spritebatch/engine/reactive"
	"github.com/hubastard/spritebatch/engine/text"
)

// Config lists the collaborators a SpriteBatch owns or talks to.
type Config struct {
	GL           core.GL
	ContextReady *reactive.Observable[core.ContextReady]

	TextureShader Shader
	FontShader    Shader
	TextureBuffer Buffer[batching.BatchItem]
	FontBuffer    Buffer[batching.GlyphItem]

	// BatchSize is the quad capacity of each batch; it must match the
	// capacity the buffers were allocated with.
	BatchSize int

	// Initial render surface and clear color, used until the context is ready.
	SurfaceWidth  int
	SurfaceHeight int
	ClearColor    colors.Color
}

// SpriteBatch queues textured quads and text between BeginBatch and
// EndBatch and draws them with one texture bind and one draw call per batch.
//
// It is not safe for concurrent use; call it from the render thread.
type SpriteBatch struct {
	gl       core.GL
	textures pipeline[batching.BatchItem]
	glyphs   pipeline[batching.GlyphItem]

	surfaceWidth  *cache.Value[int]
	surfaceHeight *cache.Value[int]
	clearColor    *cache.Value[colors.Color]
	liveClear     colors.Color

	ready       *reactive.Subscription[core.ContextReady]
	initialized bool
	hasBegun    bool
	disposed    bool
	stats       Statistics
}

// New creates the batch and subscribes it to cfg.ContextReady. GPU state is
// only touched once the context-ready notification arrives.
func New(cfg Config) (*SpriteBatch, error) {
	switch {
	case isNil(cfg.GL):
		return nil, fmt.Errorf("%w: GL", ErrNilArgument)
	case cfg.ContextReady == nil:
		return nil, fmt.Errorf("%w: context-ready observable", ErrNilArgument)
	case isNil(cfg.TextureShader) || isNil(cfg.FontShader):
		return nil, fmt.Errorf("%w: shader", ErrNilArgument)
	case isNil(cfg.TextureBuffer) || isNil(cfg.FontBuffer):
		return nil, fmt.Errorf("%w: buffer", ErrNilArgument)
	}

	texBatch, err := batching.NewManager[batching.BatchItem](cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("texture batch: %w", err)
	}
	glyphBatch, err := batching.NewManager[batching.GlyphItem](cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("font batch: %w", err)
	}

	sb := &SpriteBatch{
		gl:       cfg.GL,
		textures: pipeline[batching.BatchItem]{kind: "texture", span: "SpriteBatch.flush/texture", shader: cfg.TextureShader, buffer: cfg.TextureBuffer, batch: texBatch},
		glyphs:   pipeline[batching.GlyphItem]{kind: "font", span: "SpriteBatch.flush/font", shader: cfg.FontShader, buffer: cfg.FontBuffer, batch: glyphBatch},
	}
	sb.surfaceWidth = cache.New(cfg.SurfaceWidth,
		func() int { return sb.gl.ViewportSize().Width },
		func(w int) {
			s := sb.gl.ViewportSize()
			s.Width = w
			sb.gl.SetViewportSize(s)
		})
	sb.surfaceHeight = cache.New(cfg.SurfaceHeight,
		func() int { return sb.gl.ViewportSize().Height },
		func(h int) {
			s := sb.gl.ViewportSize()
			s.Height = h
			sb.gl.SetViewportSize(s)
		})
	sb.clearColor = cache.New(cfg.ClearColor,
		func() colors.Color { return sb.liveClear },
		func(c colors.Color) {
			sb.liveClear = c
			n := c.Normalized()
			sb.gl.ClearColor(n[0], n[1], n[2], n[3])
		})

	sb.ready = cfg.ContextReady.Subscribe(reactive.Reactor[core.ContextReady]{
		OnNext: sb.onContextReady,
	})
	return sb, nil
}

// onContextReady switches cached GPU state to live mode and sets the
// baseline pipeline state. Only the first notification has an effect.
func (sb *SpriteBatch) onContextReady(core.ContextReady) {
	if sb.initialized || sb.disposed {
		return
	}
	sb.initialized = true

	w, h := sb.surfaceWidth.Get(), sb.surfaceHeight.Get()
	clear := sb.clearColor.Get()
	sb.surfaceWidth.SetCaching(false)
	sb.surfaceHeight.SetCaching(false)
	sb.clearColor.SetCaching(false)

	// Values chosen before the context existed are applied explicitly.
	sb.gl.SetViewportSize(core.Size{Width: w, Height: h})
	sb.gl.Enable(core.CapBlend)
	sb.gl.BlendFunc(core.BlendSrcAlpha, core.BlendOneMinusSrcAlpha)
	sb.clearColor.Set(clear)
	sb.gl.ActiveTexture(core.TextureUnit0)

	core.Logger().Debug("sprite batch initialized", "width", w, "height", h)
}

// Initialized reports whether the context-ready notification was handled.
func (sb *SpriteBatch) Initialized() bool { return sb.initialized }

func (sb *SpriteBatch) RenderSurfaceWidth() int  { return sb.surfaceWidth.Get() }
func (sb *SpriteBatch) RenderSurfaceHeight() int { return sb.surfaceHeight.Get() }

// SetRenderSurfaceSize resizes the surface items are positioned against.
func (sb *SpriteBatch) SetRenderSurfaceSize(w, h int) {
	sb.surfaceWidth.Set(w)
	sb.surfaceHeight.Set(h)
}

func (sb *SpriteBatch) ClearColor() colors.Color     { return sb.clearColor.Get() }
func (sb *SpriteBatch) SetClearColor(c colors.Color) { sb.clearColor.Set(c) }

// Clear clears the render surface with ClearColor. It does nothing before
// the context is ready.
func (sb *SpriteBatch) Clear() {
	if !sb.initialized {
		return
	}
	sb.gl.Clear()
}

// BeginBatch starts collecting render calls. Calling it again while a
// batch is open has no effect.
func (sb *SpriteBatch) BeginBatch() {
	if sb.hasBegun {
		return
	}
	sb.hasBegun = true
	sb.stats = Statistics{}
}

// EndBatch flushes the texture batch then the font batch regardless of how
// full they are, and closes the batch.
func (sb *SpriteBatch) EndBatch() {
	defer profiler.Start("SpriteBatch.EndBatch")()
	sb.textures.flush(sb.gl, &sb.stats)
	sb.glyphs.flush(sb.gl, &sb.stats)
	sb.hasBegun = false
}

// Stats returns the counters of the current (or last) batch.
func (sb *SpriteBatch) Stats() Statistics { return sb.stats }

// Render draws the whole texture centred at (x, y).
func (sb *SpriteBatch) Render(tex core.Texture, x, y float32) error {
	return sb.RenderEffects(tex, x, y, colors.White, batching.EffectNone)
}

// RenderTint draws the whole texture centred at (x, y) tinted by tint.
func (sb *SpriteBatch) RenderTint(tex core.Texture, x, y float32, tint colors.Color) error {
	return sb.RenderEffects(tex, x, y, tint, batching.EffectNone)
}

// RenderEffects draws the whole texture centred at (x, y) with tint and effects.
func (sb *SpriteBatch) RenderEffects(tex core.Texture, x, y float32, tint colors.Color, effects batching.RenderEffects) error {
	if err := sb.checkRender(tex); err != nil {
		return err
	}
	w, h := float32(tex.Width()), float32(tex.Height())
	return sb.RenderRegion(tex,
		core.Rect{W: w, H: h},
		core.Rect{X: x, Y: y, W: w, H: h},
		1, 0, tint, effects)
}

// RenderSub draws a sub-texture region centred at (x, y).
func (sb *SpriteBatch) RenderSub(sub SubTexture, x, y, scale, angle float32, tint colors.Color) error {
	return sb.RenderRegion(sub.Texture, sub.Src,
		core.Rect{X: x, Y: y, W: sub.Src.W, H: sub.Src.H},
		scale, angle, tint, batching.EffectNone)
}

// RenderRegion draws the src area of tex into dest (X/Y is the centre),
// scaled, rotated by angle degrees about its centre, tinted and flipped.
func (sb *SpriteBatch) RenderRegion(tex core.Texture, src, dest core.Rect, scale, angle float32, tint colors.Color, effects batching.RenderEffects) error {
	if err := sb.checkRender(tex); err != nil {
		return err
	}
	if src.W <= 0 || src.H <= 0 {
		return fmt.Errorf("%w: source rectangle %vx%v must have a positive size", ErrInvalidArgument, src.W, src.H)
	}
	if scale < 0 {
		scale = 0
	}
	return sb.textures.add(sb.gl, &sb.stats, batching.BatchItem{
		SrcRect:      src,
		DestRect:     dest,
		Scale:        scale,
		Angle:        angle,
		Tint:         tint,
		Effects:      effects,
		TextureID:    tex.ID(),
		TextureSize:  core.Size{Width: tex.Width(), Height: tex.Height()},
		ViewportSize: sb.viewport(),
	})
}

// RenderText draws s in white at its native size, centred on (x, y).
func (sb *SpriteBatch) RenderText(f text.Font, s string, x, y float32) error {
	return sb.RenderTextEx(f, s, x, y, 1, 0, colors.White)
}

// RenderTextScaled draws s in white at scale, centred on (x, y).
func (sb *SpriteBatch) RenderTextScaled(f text.Font, s string, x, y, scale float32) error {
	return sb.RenderTextEx(f, s, x, y, scale, 0, colors.White)
}

// RenderTextEx draws s centred on (x, y). Negative scales are clamped to
// zero; angle rotates the whole block about (x, y).
func (sb *SpriteBatch) RenderTextEx(f text.Font, s string, x, y, scale, angle float32, tint colors.Color) error {
	if !sb.hasBegun {
		return ErrInvalidSequence
	}
	if isNil(f) {
		return fmt.Errorf("%w: font", ErrNilArgument)
	}
	atlas := f.Atlas()
	if isNil(atlas) || atlas.ID() == 0 {
		return fmt.Errorf("%w: font atlas", ErrNilArgument)
	}
	if scale < 0 {
		scale = 0
	}

	atlasSize := core.Size{Width: atlas.Width(), Height: atlas.Height()}
	vp := sb.viewport()
	for _, p := range text.Layout(f, s, x, y, scale, angle) {
		g := p.Glyph
		err := sb.glyphs.add(sb.gl, &sb.stats, batching.GlyphItem{
			BatchItem: batching.BatchItem{
				SrcRect:      g.Bounds,
				DestRect:     core.Rect{X: p.Center.X, Y: p.Center.Y, W: g.Width, H: g.Height},
				Scale:        scale,
				Angle:        angle,
				Tint:         tint,
				TextureID:    atlas.ID(),
				TextureSize:  atlasSize,
				ViewportSize: vp,
			},
			Glyph: g.Rune,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Dispose releases the shaders and buffers and stops listening for the
// context. Later calls do nothing.
func (sb *SpriteBatch) Dispose() {
	if sb.disposed {
		return
	}
	sb.disposed = true
	sb.ready.Unsubscribe()
	sb.textures.dispose()
	sb.glyphs.dispose()
	sb.hasBegun = false
}

func (sb *SpriteBatch) checkRender(tex core.Texture) error {
	if !sb.hasBegun {
		return ErrInvalidSequence
	}
	if isNil(tex) || tex.ID() == 0 {
		return fmt.Errorf("%w: texture", ErrNilArgument)
	}
	return nil
}

func (sb *SpriteBatch) viewport() core.Size {
	return core.Size{Width: sb.surfaceWidth.Get(), Height: sb.surfaceHeight.Get()}
}
