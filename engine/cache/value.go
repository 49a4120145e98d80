// Package cache holds values whose source of truth may not exist yet, such
// as GPU state queried before the graphics context is created.
package cache

// Value is either local (caching) or live. While caching, reads and writes
// only touch the locally held value. While live, they go straight to the
// external getter and setter.
//
// Switching modes never synchronizes on its own: use Sync to copy the
// external value into the local one.
type Value[T any] struct {
	current T
	caching bool
	get     func() T
	set     func(T)
}

// New returns a Value that starts in caching mode holding initial.
func New[T any](initial T, get func() T, set func(T)) *Value[T] {
	return &Value[T]{current: initial, caching: true, get: get, set: set}
}

// NewLive returns a Value that starts in live mode. initial becomes the
// local value once caching is turned on without a Sync.
func NewLive[T any](initial T, get func() T, set func(T)) *Value[T] {
	return &Value[T]{current: initial, get: get, set: set}
}

func (v *Value[T]) Get() T {
	if v.caching || v.get == nil {
		return v.current
	}
	return v.get()
}

func (v *Value[T]) Set(val T) {
	if v.caching || v.set == nil {
		v.current = val
		return
	}
	v.set(val)
}

func (v *Value[T]) Caching() bool { return v.caching }

// SetCaching switches modes. Neither direction reads or writes the
// external system.
func (v *Value[T]) SetCaching(on bool) { v.caching = on }

// Local returns the locally held value regardless of mode.
func (v *Value[T]) Local() T { return v.current }

// Sync copies the external value into the local one. It is a no-op while
// caching or when no getter was given.
func (v *Value[T]) Sync() {
	if v.caching || v.get == nil {
		return
	}
	v.current = v.get()
}
