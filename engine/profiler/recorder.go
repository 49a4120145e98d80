package profiler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrDisabled is returned by Dump and OpenGraph in builds without the
	// "profile" tag.
	ErrDisabled = errors.New("profiler: built without the profile tag")
	// ErrNoEvents is returned when there is nothing to write.
	ErrNoEvents = errors.New("profiler: no events recorded")
)

func nop() {}

type event struct {
	at    int64 // unix ns
	frame int
	open  bool
}

// Recorder keeps the most recent span open/close events in a fixed ring.
// Start may be called from any goroutine.
type Recorder struct {
	events []event
	next   atomic.Uint64
	now    func() int64

	mu     sync.Mutex
	names  []string
	byName map[string]int
}

func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	return &Recorder{
		events: make([]event, capacity),
		now:    func() int64 { return time.Now().UnixNano() },
		byName: map[string]int{},
	}
}

// Start opens a span named name and returns the func that closes it.
func (r *Recorder) Start(name string) func() {
	if r == nil {
		return nop
	}
	frame := r.frame(name)
	begin := r.now()
	r.push(event{at: begin, frame: frame, open: true})
	return func() {
		end := r.now()
		if end < begin {
			end = begin
		}
		r.push(event{at: end, frame: frame})
	}
}

func (r *Recorder) push(e event) {
	i := r.next.Add(1) - 1
	r.events[i%uint64(len(r.events))] = e
}

func (r *Recorder) frame(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byName[name]; ok {
		return id
	}
	id := len(r.names)
	r.byName[name] = id
	r.names = append(r.names, name)
	return id
}

// Len is the number of events currently held.
func (r *Recorder) Len() int {
	return min(int(r.next.Load()), len(r.events))
}

// snapshot returns the held events oldest first, in write order.
func (r *Recorder) snapshot() ([]event, []string) {
	n := r.next.Load()
	size := uint64(len(r.events))
	start := uint64(0)
	if n > size {
		start = n - size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.events[k%size])
	}

	r.mu.Lock()
	names := append([]string(nil), r.names...)
	r.mu.Unlock()
	return out, names
}
