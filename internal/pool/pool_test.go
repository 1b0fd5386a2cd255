package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolProducesFromNewFn(t *testing.T) {
	p := New(func() int { return 7 })
	assert.Equal(t, 7, p.Get())
}

func TestPoolRecyclesItems(t *testing.T) {
	type buf struct{ used bool }
	p := New(func() *buf { return &buf{} })

	b := p.Get()
	b.used = true
	p.Put(b)

	// sync.Pool gives no reuse guarantee, but whatever comes back must be
	// a valid item from newFn or a recycled one.
	got := p.Get()
	require.NotNil(t, got)
}

func TestNewBytes(t *testing.T) {
	p := NewBytes(4096)

	b := p.Get()
	require.NotNil(t, b)
	assert.Len(t, *b, 4096)

	(*b)[0] = 0xFF
	p.Put(b)

	b2 := p.Get()
	assert.Len(t, *b2, 4096)
}
