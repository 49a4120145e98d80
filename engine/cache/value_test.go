package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type external struct {
	val  int
	gets int
	sets int
}

func (e *external) get() int      { e.gets++; return e.val }
func (e *external) set(v int)     { e.sets++; e.val = v }
func newExternal(v int) *external { return &external{val: v} }

func TestCachingNeverTouchesExternal(t *testing.T) {
	ext := newExternal(99)
	v := New(10, ext.get, ext.set)

	assert.True(t, v.Caching())
	assert.Equal(t, 10, v.Get())

	v.Set(20)
	assert.Equal(t, 20, v.Get())
	assert.Zero(t, ext.gets)
	assert.Zero(t, ext.sets)
	assert.Equal(t, 99, ext.val)
}

func TestLiveReflectsExternal(t *testing.T) {
	ext := newExternal(5)
	v := NewLive(10, ext.get, ext.set)

	assert.False(t, v.Caching())
	assert.Equal(t, 5, v.Get())
	ext.val = 6
	assert.Equal(t, 6, v.Get())

	v.Set(7)
	assert.Equal(t, 7, ext.val)
	assert.Equal(t, 1, ext.sets)
	assert.Equal(t, 10, v.Local(), "live writes leave the local value alone")
}

func TestTurningCachingOffDoesNotSync(t *testing.T) {
	ext := newExternal(5)
	v := New(10, ext.get, ext.set)

	v.SetCaching(false)
	assert.Zero(t, ext.gets)
	assert.Zero(t, ext.sets)
	assert.Equal(t, 5, v.Get())
}

func TestTurningCachingOnKeepsLocalBaseline(t *testing.T) {
	ext := newExternal(5)
	v := NewLive(10, ext.get, ext.set)

	assert.Equal(t, 5, v.Get())
	v.SetCaching(true)
	assert.Equal(t, 10, v.Get(), "no implicit resync")
}

func TestSync(t *testing.T) {
	ext := newExternal(5)
	v := NewLive(10, ext.get, ext.set)

	v.Sync()
	v.SetCaching(true)
	assert.Equal(t, 5, v.Get())

	ext.val = 8
	v.Sync()
	assert.Equal(t, 5, v.Get(), "sync is a no-op while caching")
}

func TestNilDelegates(t *testing.T) {
	v := NewLive[string]("a", nil, nil)
	assert.Equal(t, "a", v.Get())
	v.Set("b")
	assert.Equal(t, "b", v.Get())
}
