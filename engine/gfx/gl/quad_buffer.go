package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	"github.com/hubastard/spritebatch/engine/reactive"
)

// Quad is anything that can write its four vertices.
type Quad interface {
	AppendQuad(dst []float32) []float32
}

type vertexAttrib struct {
	location uint32
	size     int32
	offset   int // floats
}

// pos2 + uv2 + color4, see batching.Vertex
var quadLayout = []vertexAttrib{
	{location: 0, size: 2, offset: 0},
	{location: 1, size: 2, offset: 2},
	{location: 2, size: 4, offset: 4},
}

// QuadBuffer is a VAO with a dynamic vertex buffer of capacity quads and a
// static index buffer describing every slot. GL objects are created when
// the context becomes ready.
type QuadBuffer[T Quad] struct {
	name     string
	capacity int
	vao      uint32
	vbo      uint32
	ebo      uint32
	scratch  []float32
	warned   bool
	sub      *reactive.Subscription[core.ContextReady]
}

func NewQuadBuffer[T Quad](name string, capacity int, ready *reactive.Observable[core.ContextReady]) *QuadBuffer[T] {
	b := &QuadBuffer[T]{
		name:     name,
		capacity: capacity,
		scratch:  make([]float32, 0, batching.FloatsPerQuad),
	}
	b.sub = ready.Subscribe(reactive.Reactor[core.ContextReady]{OnNext: b.init})
	return b
}

func (b *QuadBuffer[T]) init(core.ContextReady) {
	if b.vao != 0 {
		return
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, b.capacity*batching.FloatsPerQuad*4, nil, gl.DYNAMIC_DRAW)

	indices := make([]uint32, 0, b.capacity*batching.IndsPerQuad)
	for slot := 0; slot < b.capacity; slot++ {
		q := batching.QuadIndices(slot)
		indices = append(indices, q[:]...)
	}
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	const stride = batching.VertexStride * 4 // bytes
	for _, a := range quadLayout {
		gl.EnableVertexAttribArray(a.location)
		gl.VertexAttribPointer(a.location, a.size, gl.FLOAT, false, stride, gl.PtrOffset(a.offset*4))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	core.Logger().Debug("quad buffer created", "buffer", b.name, "capacity", b.capacity)
}

// Upload writes item's vertices at slot and leaves the VAO bound for the
// draw call that follows.
func (b *QuadBuffer[T]) Upload(item T, slot int) {
	if b.vao == 0 {
		if !b.warned {
			core.Logger().Warn("quad buffer used before the context is ready", "buffer", b.name)
			b.warned = true
		}
		return
	}
	if slot < 0 || slot >= b.capacity {
		core.Logger().Error("quad slot out of range", "buffer", b.name, "slot", slot, "capacity", b.capacity)
		return
	}
	b.scratch = item.AppendQuad(b.scratch[:0])

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, slot*batching.FloatsPerQuad*4, len(b.scratch)*4, gl.Ptr(b.scratch))
}

func (b *QuadBuffer[T]) Capacity() int { return b.capacity }

func (b *QuadBuffer[T]) Dispose() {
	b.sub.Unsubscribe()
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
