package main

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/spritebatch/engine/assets"
	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	"github.com/hubastard/spritebatch/engine/gfx/renderer2d"
	"github.com/hubastard/spritebatch/engine/profiler"
	"github.com/hubastard/spritebatch/engine/text"
)

const (
	tileSize = 32
	gridCols = 24
	gridRows = 12
)

// ------- A simple 2D Layer demo -------
type Layer2D struct {
	sb     *renderer2d.SpriteBatch
	font   *text.FontAtlas
	stats  *renderer2d.Statistics
	tex    core.Texture
	frames []renderer2d.SubTexture
	flip   batching.RenderEffects
	t      float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	tex, err := assets.LoadTexture(e.Device, "player.png")
	if err != nil {
		core.Logger().Info("player.png unavailable, using a generated sheet", "err", err)
		tex, err = checkerSheet(e.Device)
		if err != nil {
			panic(err)
		}
	}
	l.tex = tex
	l.frames = renderer2d.Frames(tex, 0, tileSize, tileSize, tex.Width()/tileSize)
}

func (l *Layer2D) OnDetach(e *core.Engine) {}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.t += float32(dt)
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("Layer2D.OnRender")()

	w := float32(l.sb.RenderSurfaceWidth())
	h := float32(l.sb.RenderSurfaceHeight())

	l.sb.BeginBatch()
	stepX := w / (gridCols + 1)
	stepY := h / (gridRows + 1)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			f := l.frames[(row+col)%len(l.frames)]
			x := stepX * float32(col+1)
			y := stepY * float32(row+1)
			angle := math32.Mod(l.t*90+float32(row*col), 360)
			warnRender("tile", l.sb.RenderSub(f, x, y, 1, angle, colors.White))
		}
	}
	warnRender("player", l.sb.RenderEffects(l.tex, w/2, h/2, colors.White.WithAlpha(200), l.flip))
	warnRender("caption", l.sb.RenderTextEx(l.font, "Sprite batching\npress space to flip", w/2, h-48, 1, 0, colors.Yellow))
	l.sb.EndBatch()

	*l.stats = l.sb.Stats()
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventKey); ok && v.Down && v.Key == core.KeySpace {
		l.flip = (l.flip + 1) % (batching.EffectFlipBoth + 1)
		return true
	}
	return false
}

// checkerSheet builds a strip of four solid tiles with a light border.
func checkerSheet(tf core.TextureFactory) (core.Texture, error) {
	palette := []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Magenta}
	w, h := tileSize*len(palette), tileSize
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := palette[x/tileSize]
			if lx := x % tileSize; lx < 2 || lx >= tileSize-2 || y < 2 || y >= tileSize-2 {
				c = colors.White
			}
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return tf.CreateTexture(core.TextureDesc{
		Name:      "checker",
		Width:     w,
		Height:    h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: core.FilterNearest,
		MagFilter: core.FilterNearest,
		WrapU:     core.WrapClamp,
		WrapV:     core.WrapClamp,
	})
}
