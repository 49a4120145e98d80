package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hubastard/spritebatch/engine/assets"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	glbackend "github.com/hubastard/spritebatch/engine/gfx/gl"
	"github.com/hubastard/spritebatch/engine/gfx/renderer2d"
	"github.com/hubastard/spritebatch/engine/platform"
	"github.com/hubastard/spritebatch/engine/profiler"
	"github.com/hubastard/spritebatch/engine/text"
)

const configPath = "grove.toml"

type App struct {
	sb    *renderer2d.SpriteBatch
	font  *text.FontAtlas
	stats renderer2d.Statistics
	debug *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)
	if !profiler.Enabled() {
		core.Logger().Debug("profiler disabled, build with -tags profile to record spans")
	}

	var err error
	a.sb, err = newSpriteBatch(e)
	if err != nil {
		panic(err)
	}

	if e.Config.Font != "" {
		a.font, err = text.LoadTTF(e.Device, e.Config.Font, e.Config.FontSize)
	} else {
		a.font, err = text.LoadDefault(e.Device, e.Config.FontSize)
	}
	if err != nil {
		panic(err)
	}

	e.Layers.Push(&Layer2D{sb: a.sb, font: a.font, stats: &a.stats})
	a.debug = &LayerDebug{sb: a.sb, font: a.font, stats: &a.stats}
	e.Layers.Push(a.debug)
}

// newSpriteBatch builds the GL shaders and buffers and a SpriteBatch sized
// to the framebuffer, which differs from the window size on HiDPI screens.
func newSpriteBatch(e *core.Engine) (*renderer2d.SpriteBatch, error) {
	vs, err := assets.LoadShaderFile("sprite.vert")
	if err != nil {
		return nil, err
	}
	spriteFS, err := assets.LoadShaderFile("sprite.frag")
	if err != nil {
		return nil, err
	}
	fontFS, err := assets.LoadShaderFile("font.frag")
	if err != nil {
		return nil, err
	}

	n := e.Config.BatchSize
	fbW, fbH := e.Window.FramebufferSize()
	return renderer2d.New(renderer2d.Config{
		GL:            e.Device,
		ContextReady:  e.ContextReady,
		TextureShader: glbackend.NewShader("sprite", vs, spriteFS, e.ContextReady),
		FontShader:    glbackend.NewShader("font", vs, fontFS, e.ContextReady),
		TextureBuffer: glbackend.NewQuadBuffer[batching.BatchItem]("sprites", n, e.ContextReady),
		FontBuffer:    glbackend.NewQuadBuffer[batching.GlyphItem]("glyphs", n, e.ContextReady),
		BatchSize:     n,
		SurfaceWidth:  fbW,
		SurfaceHeight: fbH,
		ClearColor:    e.Config.ClearColor,
	})
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.sb.Clear()
}

// warnRender logs a render call that was rejected; the frame goes on.
func warnRender(what string, err error) {
	if err != nil {
		core.Logger().Warn("render failed", "what", what, "err", err)
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if v, ok := ev.(core.EventResize); ok && v.W > 0 && v.H > 0 {
		a.sb.SetRenderSurfaceSize(v.W, v.H)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.sb.Dispose()
	a.font.Close()
}

func loadConfig() (core.Config, error) {
	cfg, err := core.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return core.DefaultConfig(), nil
	}
	return cfg, err
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: core.ParseLevel(cfg.LogLevel)}))
	core.SetLogger(logger)

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newDevice := func(win core.Window, cfg core.Config) (core.Device, error) {
		return glbackend.NewDevice(win, cfg)
	}

	if err := core.Run(&App{}, cfg, newWindow, newDevice); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
