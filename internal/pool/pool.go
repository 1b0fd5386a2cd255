// Package pool wraps sync.Pool with type safety. The UDP server uses it
// to recycle receive buffers instead of allocating one per datagram.
package pool

import "sync"

// Pool is a typed sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
}

// New creates a Pool whose items are produced by newFn.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any { return newFn() },
		},
	}
}

// NewBytes creates a pool of fixed-size byte buffers. Buffers are held
// behind pointers so sync.Pool does not allocate on Put.
func NewBytes(size int) *Pool[*[]byte] {
	return New(func() *[]byte {
		b := make([]byte, size)
		return &b
	})
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	p.internal.Put(item)
}
