package core

import (
	"time"

	"github.com/hubastard/spritebatch/engine/reactive"
)

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/device creation, before context-ready
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// ContextReady is the payload pushed once the native graphics context exists.
type ContextReady struct{}

// Engine exposes core services to the App.
type Engine struct {
	Window Window
	Device Device
	Input  *Input
	Layers *LayerStack
	Config Config

	// ContextReady fires once the device can accept GPU calls. Components
	// that need GPU state subscribe during OnStart.
	ContextReady *reactive.Observable[ContextReady]

	start time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Device is the graphics backend: the draw-call invoker plus resource creation.
type Device interface {
	GL
	TextureFactory
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
