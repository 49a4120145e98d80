package glbackend

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/spritebatch/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestEnumMapping(t *testing.T) {
	assert.Equal(t, uint32(gl.BLEND), glCapability(core.CapBlend))
	assert.Equal(t, uint32(gl.DEPTH_TEST), glCapability(core.CapDepthTest))

	assert.Equal(t, uint32(gl.SRC_ALPHA), glBlend(core.BlendSrcAlpha))
	assert.Equal(t, uint32(gl.ONE_MINUS_SRC_ALPHA), glBlend(core.BlendOneMinusSrcAlpha))
	assert.Equal(t, uint32(gl.ONE), glBlend(core.BlendOne))

	assert.Equal(t, uint32(gl.TRIANGLES), glPrimitive(core.PrimitiveTriangles))
	assert.Equal(t, uint32(gl.UNSIGNED_INT), glIndexType(core.IndexUint32))
	assert.Equal(t, uint32(gl.TEXTURE_2D), glTarget(core.Texture2D))

	assert.Equal(t, int32(gl.NEAREST), glFilter(core.FilterNearest))
	assert.Equal(t, int32(gl.LINEAR), glFilter(core.FilterLinear))
	assert.Equal(t, int32(gl.LINEAR), glFilter(""))
	assert.Equal(t, int32(gl.REPEAT), glWrap(core.WrapRepeat))
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), glWrap(core.WrapClamp))
}

func TestNilTexture(t *testing.T) {
	var tex *Texture
	assert.NotPanics(t, func() {
		assert.Zero(t, tex.ID())
		assert.Zero(t, tex.Width())
		assert.Zero(t, tex.Height())
		assert.Empty(t, tex.Name())
	})
}
