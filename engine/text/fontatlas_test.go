package text

import (
	"errors"
	"testing"

	"github.com/hubastard/spritebatch/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultBuildsAtlas(t *testing.T) {
	tf := &fakeTextureFactory{}
	fa, err := LoadDefault(tf, 24)
	require.NoError(t, err)
	defer fa.Close()

	require.Len(t, tf.descs, 1)
	desc := tf.descs[0]
	assert.Equal(t, desc.Width, desc.Height)
	assert.Len(t, desc.Pixels, desc.Width*desc.Height*4)
	assert.Equal(t, core.TextureRGBA8, desc.Format)
	assert.Equal(t, uint32(1), fa.Atlas().ID())

	a, ok := fa.Glyph('A')
	require.True(t, ok)
	assert.True(t, a.Visible())
	assert.Positive(t, a.Advance)
	assert.NotZero(t, a.Index)
	assert.LessOrEqual(t, a.Bounds.X+a.Bounds.W, float32(desc.Width))
	assert.LessOrEqual(t, a.Bounds.Y+a.Bounds.H, float32(desc.Height))

	sp, ok := fa.Glyph(' ')
	require.True(t, ok)
	assert.False(t, sp.Visible())
	assert.Positive(t, sp.Advance)

	_, ok = fa.Glyph(InvalidRune)
	assert.True(t, ok, "atlas must carry a fallback glyph")

	assert.Positive(t, fa.LineSpacing())
	assert.GreaterOrEqual(t, fa.LineSpacing(), fa.Ascent)
}

func TestDefaultAtlasLaysOutText(t *testing.T) {
	fa, err := LoadDefault(&fakeTextureFactory{}, 16)
	require.NoError(t, err)

	ps := Layout(fa, "Hello, grove!", 200, 100, 1, 0)
	assert.Len(t, ps, 12)

	w, h := Measure(fa, "Hello, grove!", 1)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestParseTTFErrors(t *testing.T) {
	_, err := ParseTTF(&fakeTextureFactory{}, "junk", []byte("not a font"), 12)
	assert.Error(t, err)

	_, err = LoadDefault(&fakeTextureFactory{}, 0)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = LoadDefault(&fakeTextureFactory{err: boom}, 12)
	assert.ErrorIs(t, err, boom)
}

func TestLoadTTFMissingFile(t *testing.T) {
	_, err := LoadTTF(&fakeTextureFactory{}, "does-not-exist.ttf", 12)
	assert.Error(t, err)
}

func TestNilFontAtlas(t *testing.T) {
	var fa *FontAtlas
	assert.NotPanics(t, func() {
		assert.Nil(t, fa.Atlas())
		_, ok := fa.Glyph('a')
		assert.False(t, ok)
		assert.False(t, fa.HasKerning())
		assert.Zero(t, fa.Kerning(1, 2))
		assert.Zero(t, fa.LineSpacing())
		fa.Close()
	})
}
