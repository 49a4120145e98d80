// Package batching holds draw items and the fixed-capacity batches they are
// queued in between flushes.
package batching

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration    = errors.New("batching: invalid configuration")
	ErrCapacityExceeded = errors.New("batching: batch is full")
)

// Item is what a Manager can hold.
type Item interface {
	IsEmpty() bool
}

// Slot is one position of a batch.
type Slot[T Item] struct {
	ShouldRender bool
	Item         T
}

// AddResult tells the caller whether the add filled the batch, in which case
// the caller must flush and Clear before adding again.
type AddResult uint8

const (
	Inserted AddResult = iota
	InsertedAndFull
)

// Manager is an ordered batch of capacity slots. Storage is allocated once;
// Clear resets slots in place.
type Manager[T Item] struct {
	slots []Slot[T]
	n     int
}

func NewManager[T Item](capacity int) (*Manager[T], error) {
	m := &Manager[T]{}
	if err := m.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return m, nil
}

// SetCapacity resizes the batch. It fails once items are queued.
func (m *Manager[T]) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrConfiguration, capacity)
	}
	if m.n > 0 {
		return fmt.Errorf("%w: cannot resize a batch holding %d items", ErrConfiguration, m.n)
	}
	m.slots = make([]Slot[T], capacity)
	return nil
}

// Add appends item at the next free slot.
func (m *Manager[T]) Add(item T) (AddResult, error) {
	if m.n >= len(m.slots) {
		return Inserted, fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(m.slots))
	}
	m.slots[m.n] = Slot[T]{ShouldRender: true, Item: item}
	m.n++
	if m.n == len(m.slots) {
		return InsertedAndFull, nil
	}
	return Inserted, nil
}

// Clear marks every slot as not renderable and zeroes its item.
func (m *Manager[T]) Clear() {
	var zero Slot[T]
	for i := range m.slots {
		m.slots[i] = zero
	}
	m.n = 0
}

// Slots exposes the batch in insertion order. Callers must not modify it.
func (m *Manager[T]) Slots() []Slot[T] { return m.slots }

func (m *Manager[T]) Len() int      { return m.n }
func (m *Manager[T]) Capacity() int { return len(m.slots) }
func (m *Manager[T]) Full() bool    { return m.n == len(m.slots) }
