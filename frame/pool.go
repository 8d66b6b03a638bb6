package frame

import "sync"

// Pool provides sync.Pool-based reuse of intermediate (16-bit lane) buffers
// to keep scratch allocation off the per-block hot path.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]int16, 0, 64*64)
				return &buf
			},
		},
	}
}

// Get returns a buffer of length n. Its contents are unspecified.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *[]int16 {
	buf := p.pool.Get().(*[]int16)
	if cap(*buf) < n {
		*buf = make([]int16, n)
	}
	*buf = (*buf)[:n]

	return buf
}

// Put returns a buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(buf *[]int16) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
