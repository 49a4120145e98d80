package renderer2d

import "github.com/hubastard/spritebatch/engine/gfx/batching"

// Statistics captures the counts generated between BeginBatch and EndBatch.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureBinds int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * batching.VertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * batching.IndsPerQuad }
