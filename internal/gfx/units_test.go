package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitAllocatorAcquireSequential(t *testing.T) {
	a := NewUnitAllocator(4)
	for want := 0; want < 4; want++ {
		got, err := a.Acquire()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 4, a.InUse())
}

func TestUnitAllocatorExhaustion(t *testing.T) {
	a := NewUnitAllocator(2)
	_, err := a.Acquire()
	require.NoError(t, err)
	_, err = a.Acquire()
	require.NoError(t, err)

	_, err = a.Acquire()
	assert.ErrorIs(t, err, ErrTextureUnitsExhausted)
}

func TestUnitAllocatorReuseLowestFirst(t *testing.T) {
	a := NewUnitAllocator(8)
	for i := 0; i < 4; i++ {
		_, err := a.Acquire()
		require.NoError(t, err)
	}

	a.Release(2)
	a.Release(0)

	got, err := a.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = a.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = a.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestUnitAllocatorReleaseIgnoresBogus(t *testing.T) {
	a := NewUnitAllocator(4)
	u, err := a.Acquire()
	require.NoError(t, err)

	a.Release(-1)
	a.Release(99)
	a.Release(u)
	a.Release(u) // double release is a no-op

	assert.Equal(t, 0, a.InUse())
	got, err := a.Acquire()
	require.NoError(t, err)
	assert.Equal(t, u, got)
}
