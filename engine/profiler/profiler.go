//go:build profile

package profiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"

	"github.com/hubastard/spritebatch/engine/core"
)

var active atomic.Pointer[Recorder]

func Enabled() bool { return true }

// Init starts recording into a ring of capacity events.
// Example: profiler.Init(1 << 20) // ~1M span events
func Init(capacity int) {
	active.Store(NewRecorder(capacity))
}

// Start begins a span and returns the func that ends it; use with defer.
func Start(name string) func() {
	return active.Load().Start(name)
}

// Dump writes the recorded spans to a speedscope file in the temp dir.
func Dump() (string, error) {
	r := active.Load()
	if r == nil {
		return "", ErrNoEvents
	}
	path := filepath.Join(os.TempDir(), "spritebatch.speedscope.json")
	f, err := os.CreateTemp(filepath.Dir(path), "spritebatch-*.json")
	if err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	if err := r.WriteSpeedscope(f); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}
	return path, nil
}

// OpenGraph dumps the spans and opens them with the speedscope CLI.
func OpenGraph() (string, error) {
	path, err := Dump()
	if err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	hideConsole(cmd)
	if err := cmd.Start(); err != nil {
		core.Logger().Warn("speedscope not started", "path", path, "err", err)
	}
	return path, nil
}
