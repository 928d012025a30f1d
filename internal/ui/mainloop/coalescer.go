// Package mainloop schedules work on the GTK main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks: only the latest
// callback posted before the loop runs executes.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	pending   map[K]bool
	callbacks map[K]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer[K]{
		pending:   make(map[K]bool),
		callbacks: make(map[K]func()),
		post:      post,
	}
}

// Post queues fn under key. It is safe to call from any goroutine.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Destroy drops queued work; later posts are ignored.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.pending)
	clear(c.callbacks)
	c.mu.Unlock()
}
