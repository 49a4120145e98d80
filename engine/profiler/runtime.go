package profiler

import "runtime"

// RuntimeStats is a snapshot of Go runtime counters for on-screen display.
type RuntimeStats struct {
	HeapAlloc  uint64 // bytes
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

// ReadRuntime stops the world briefly; call it at most once per frame.
func ReadRuntime() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeStats{
		HeapAlloc:  m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}

func MemoryUsage() uint64 { return ReadRuntime().HeapAlloc }

func MemoryAllocs() uint64 { return ReadRuntime().Mallocs }

func NumGoroutine() int { return runtime.NumGoroutine() }

func NumCPU() int { return runtime.NumCPU() }
