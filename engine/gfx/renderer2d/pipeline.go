package renderer2d

import (
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/hubastard/spritebatch/engine/gfx/batching"
	"github.com/hubastard/spritebatch/engine/profiler"
)

// Shader is a compiled program for one kind of quad.
type Shader interface {
	Use()
	Dispose()
}

// Buffer is a GPU-resident quad buffer with one slot per batch position.
type Buffer[T any] interface {
	Upload(item T, slot int)
	Dispose()
}

type texturedItem interface {
	batching.Item
	Texture() uint32
}

// pipeline is the batch of one draw kind together with the GPU objects
// that flush it.
type pipeline[T texturedItem] struct {
	kind   string
	span   string // profiler span of flush
	shader Shader
	buffer Buffer[T]
	batch  *batching.Manager[T]
}

// add queues item. A pending batch for another texture is flushed first, and
// the batch is flushed as soon as it fills.
func (p *pipeline[T]) add(gl core.GL, stats *Statistics, item T) error {
	if n := p.batch.Len(); n > 0 && p.batch.Slots()[n-1].Item.Texture() != item.Texture() {
		p.flush(gl, stats)
	}
	res, err := p.batch.Add(item)
	if err != nil {
		return err
	}
	if res == batching.InsertedAndFull {
		p.flush(gl, stats)
	}
	return nil
}

// flush binds the batch texture once, uploads every queued item at its
// slot and issues a single indexed draw.
func (p *pipeline[T]) flush(gl core.GL, stats *Statistics) {
	if p.batch.Len() == 0 {
		return
	}
	defer profiler.Start(p.span)()
	p.shader.Use()

	bound := false
	n := 0
	for i, slot := range p.batch.Slots() {
		if !slot.ShouldRender || slot.Item.IsEmpty() {
			continue
		}
		if !bound {
			gl.ActiveTexture(core.TextureUnit0)
			gl.BindTexture(core.Texture2D, slot.Item.Texture())
			stats.TextureBinds++
			bound = true
		}
		p.buffer.Upload(slot.Item, i)
		n++
	}

	if n > 0 {
		gl.DrawElements(core.PrimitiveTriangles, n*batching.IndsPerQuad, core.IndexUint32, 0)
		stats.DrawCalls++
		stats.QuadCount += n
		core.Logger().Debug("batch flushed", "kind", p.kind, "items", n, "indices", n*batching.IndsPerQuad)
	}
	p.batch.Clear()
}

func (p *pipeline[T]) dispose() {
	p.batch.Clear()
	p.buffer.Dispose()
	p.shader.Dispose()
}
