package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hubastard/spritebatch/engine/colors"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/renderer2d"
	"github.com/hubastard/spritebatch/engine/profiler"
	"github.com/hubastard/spritebatch/engine/text"
)

// LayerDebug draws frame, batch and runtime counters in the top-left corner.
// P toggles it, Ctrl+P opens the recorded spans in speedscope.
type LayerDebug struct {
	sb        *renderer2d.SpriteBatch
	font      *text.FontAtlas
	stats     *renderer2d.Statistics
	lastFrame time.Time
	frameMs   float32
	tick      int
	visible   bool
}

func (l *LayerDebug) OnAttach(e *core.Engine) { l.visible = true }
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.tick++
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("LayerDebug.OnRender")()

	now := time.Now()
	if !l.lastFrame.IsZero() {
		l.frameMs = float32(now.Sub(l.lastFrame).Seconds() * 1000)
	}
	l.lastFrame = now
	if !l.visible {
		return
	}

	rt := profiler.ReadRuntime()

	var b strings.Builder
	fmt.Fprintf(&b, "Frame: %d\n", l.tick)
	if l.frameMs > 0 {
		fmt.Fprintf(&b, "%2.3f ms (%.1f FPS)\n", l.frameMs, 1000/l.frameMs)
	}
	fmt.Fprintf(&b, "Draw calls: %d\n", l.stats.DrawCalls)
	fmt.Fprintf(&b, "Quads: %d\n", l.stats.QuadCount)
	fmt.Fprintf(&b, "Vertices: %d\n", l.stats.TotalVertexCount())
	fmt.Fprintf(&b, "Texture binds: %d\n", l.stats.TextureBinds)
	fmt.Fprintf(&b, "Heap: %.2f MB\n", float32(rt.HeapAlloc)/(1<<20))
	fmt.Fprintf(&b, "Allocs: %d\n", rt.Mallocs)
	fmt.Fprintf(&b, "Goroutines: %d / CPUs: %d", rt.Goroutines, rt.CPUs)
	s := b.String()

	scale := float32(0.75)
	w, h := text.Measure(l.font, s, scale)
	const pad = 16

	l.sb.BeginBatch()
	warnRender("debug overlay", l.sb.RenderTextEx(l.font, s, pad+w/2, pad+h/2, scale, 0, colors.White))
	l.sb.EndBatch()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	v, ok := ev.(core.EventKey)
	if !ok || !v.Down || v.Key != core.KeyP {
		return false
	}
	if v.Mods&core.ModCtrl == 0 {
		l.visible = !l.visible
		return true
	}
	path, err := profiler.OpenGraph()
	switch {
	case errors.Is(err, profiler.ErrDisabled):
		core.Logger().Info("profiler disabled, build with -tags profile")
	case err != nil:
		core.Logger().Warn("profiler dump failed", "err", err)
	default:
		core.Logger().Info("speedscope dump", "path", path)
	}
	return true
}
