// Package scratch pools the column buffers batch kernels split vectors into.
package scratch

import (
	"sync"

	"github.com/cwbudde/algo-vector/scalar"
)

// Buffer is a reusable float slice.
type Buffer[T scalar.Float] struct {
	data []T
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Resize sets the length to n, reusing capacity when possible. Contents are
// unspecified after a resize; callers overwrite every element. Data is never
// nil after a resize, even for n == 0.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if b.data != nil && n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = make([]T, n)
}

// Pool hands out Buffers backed by a sync.Pool.
type Pool[T scalar.Float] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T scalar.Float]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a buffer of length n. Callers return it with Put.
func (p *Pool[T]) Get(n int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(n)
	return b
}

// Put returns b to the pool. b must not be used afterwards.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// Float64 and Float32 are the process-wide pools used by package batch.
var (
	Float64 = NewPool[float64]()
	Float32 = NewPool[float32]()
)
