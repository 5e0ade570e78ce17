package skipmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorNextTraversesElementsInOrder(t *testing.T) {
	m, err := New[int, int](16, 0.5)
	require.NoError(t, err)

	for _, key := range []int{5, 1, 3} {
		require.NoError(t, m.Insert(key, key*10))
	}

	it := m.Iterator()
	require.False(t, it.Valid())

	var keys []int
	for it.Next() {
		k := it.Key()
		keys = append(keys, k)
		require.Equal(t, k*10, it.Value(), "value for key %d", k)
	}

	assert.Equal(t, []int{1, 3, 5}, keys)
	assert.False(t, it.Valid(), "iterator should be invalid after exhaustion")
	assert.Zero(t, it.Key())
	assert.Zero(t, it.Value())
}

func TestIteratorSeekGEPositionsCorrectly(t *testing.T) {
	m, err := New[int, string](16, 0.5)
	require.NoError(t, err)

	m.Set(1, "one")
	m.Set(3, "three")
	m.Set(5, "five")

	it := m.Iterator()

	require.True(t, it.SeekGE(2), "expected SeekGE to locate key >= 2")
	assert.Equal(t, 3, it.Key())
	assert.Equal(t, "three", it.Value())

	require.True(t, it.SeekGE(3), "exact match")
	assert.Equal(t, 3, it.Key())

	require.True(t, it.Next())
	assert.Equal(t, 5, it.Key())

	assert.False(t, it.Next(), "expected iterator to report exhaustion")
	assert.False(t, it.SeekGE(6), "expected SeekGE beyond last key to report false")

	require.True(t, it.SeekGE(-10))
	assert.Equal(t, 1, it.Key())
}

func TestIteratorRestartsAfterExhaustion(t *testing.T) {
	m, err := New[int, int](16, 0.5)
	require.NoError(t, err)
	m.Set(1, 1)

	it := m.Iterator()
	require.True(t, it.Next())
	require.False(t, it.Next())
	require.True(t, it.Next(), "an invalid iterator restarts from the first element")
	assert.Equal(t, 1, it.Key())
}

func TestIteratorOnEmptyMap(t *testing.T) {
	m, err := New[int, int](16, 0.5)
	require.NoError(t, err)

	it := m.Iterator()
	assert.False(t, it.Next())
	assert.False(t, m.SeekGE(0).Valid())

	var nilIt *Iterator[int, int]
	assert.False(t, nilIt.Valid())
	assert.False(t, nilIt.Next())
	assert.False(t, nilIt.SeekGE(1))
	assert.Zero(t, nilIt.Key())
}

func TestIteratorSkipsDeletedKeys(t *testing.T) {
	m, err := New[int, int](16, 0.5)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		m.Set(i, i)
	}
	_, ok := m.Delete(2)
	require.True(t, ok)

	it := m.SeekGE(2)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Key())
}
