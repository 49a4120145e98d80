package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/spritebatch/engine/reactive"
)

// Run wires the platform window + device and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}
	log := Logger()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	dev, err := newDevice(win, cfg)
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	// device shuts down before the window that owns its context
	defer dev.Shutdown()

	eng := &Engine{
		Window:       win,
		Device:       dev,
		Input:        NewInput(),
		Config:       cfg,
		ContextReady: reactive.NewObservable[ContextReady](),
		start:        time.Now(),
	}
	eng.Layers = NewLayerStack(eng)
	defer eng.ContextReady.Complete()

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if !eng.Layers.Dispatch(ev) {
			app.OnEvent(eng, ev)
		}
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			dev.SetViewportSize(Size{Width: fw, Height: fh})
		}
	})

	app.OnStart(eng)

	// Everything created in OnStart has subscribed; the context is live.
	log.Info("graphics context ready", "subscribers", eng.ContextReady.Len())
	eng.ContextReady.Push(ContextReady{})

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.Update(dt)
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		app.OnRender(eng, alpha)
		eng.Layers.Render(alpha)

		win.SwapBuffers()
	}

	eng.Layers.Clear()
	app.OnShutdown(eng)
	log.Info("engine exit", "uptime", eng.Uptime())
	return nil
}
