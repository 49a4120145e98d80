package batching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id uint32) BatchItem { return BatchItem{TextureID: id, Scale: 1} }

func TestNewManagerRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		m, err := NewManager[BatchItem](c)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Nil(t, m)
	}
}

func TestFilledExactlyOnceOnLastAdd(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 10, 64} {
		m, err := NewManager[BatchItem](capacity)
		require.NoError(t, err)

		filled := 0
		for i := 0; i < capacity; i++ {
			res, err := m.Add(item(uint32(i + 1)))
			require.NoError(t, err)
			if res == InsertedAndFull {
				filled++
				assert.Equal(t, capacity-1, i, "capacity %d filled early", capacity)
			}
		}
		assert.Equal(t, 1, filled, "capacity %d", capacity)
		assert.True(t, m.Full())
	}
}

func TestSlotsKeepInsertionOrder(t *testing.T) {
	m, err := NewManager[BatchItem](4)
	require.NoError(t, err)

	_, _ = m.Add(item(7))
	_, _ = m.Add(item(3))

	slots := m.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, uint32(7), slots[0].Item.TextureID)
	assert.Equal(t, uint32(3), slots[1].Item.TextureID)
	assert.True(t, slots[0].ShouldRender)
	assert.True(t, slots[1].ShouldRender)
	assert.False(t, slots[2].ShouldRender)
	assert.True(t, slots[3].Item.IsEmpty())
	assert.Equal(t, 2, m.Len())
}

func TestClearAllowsReuseWithoutGrowth(t *testing.T) {
	m, err := NewManager[BatchItem](3)
	require.NoError(t, err)

	for round := 0; round < 3; round++ {
		var last AddResult
		for i := 0; i < 3; i++ {
			last, err = m.Add(item(1))
			require.NoError(t, err)
		}
		assert.Equal(t, InsertedAndFull, last)

		before := &m.Slots()[0]
		m.Clear()

		assert.Same(t, before, &m.Slots()[0], "clear must not reallocate")
		assert.Len(t, m.Slots(), 3)
		assert.Zero(t, m.Len())
		for _, s := range m.Slots() {
			assert.False(t, s.ShouldRender)
			assert.True(t, s.Item.IsEmpty())
		}
	}
}

func TestAddWhenFull(t *testing.T) {
	m, err := NewManager[BatchItem](1)
	require.NoError(t, err)

	res, err := m.Add(item(1))
	require.NoError(t, err)
	assert.Equal(t, InsertedAndFull, res)

	_, err = m.Add(item(2))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uint32(1), m.Slots()[0].Item.TextureID)
}

func TestSetCapacity(t *testing.T) {
	m, err := NewManager[GlyphItem](2)
	require.NoError(t, err)

	require.NoError(t, m.SetCapacity(5))
	assert.Equal(t, 5, m.Capacity())

	assert.ErrorIs(t, m.SetCapacity(0), ErrConfiguration)

	_, err = m.Add(GlyphItem{BatchItem: item(1), Glyph: 'a'})
	require.NoError(t, err)
	assert.ErrorIs(t, m.SetCapacity(8), ErrConfiguration)
	assert.Equal(t, 5, m.Capacity())

	m.Clear()
	require.NoError(t, m.SetCapacity(8))
	assert.Equal(t, 8, m.Capacity())
}
