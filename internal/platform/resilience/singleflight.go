package resilience

import (
	"context"
	"fmt"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. Callers that
// join an in-flight call share its result. The shared call runs on its own
// goroutine, so a caller giving up never cancels it for the others.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Do runs fn once per key across concurrent callers and waits for its result
// or for ctx to end, whichever comes first. The bool reports whether the
// result was shared with another caller.
func (g *SingleFlight[T]) Do(ctx context.Context, key string, fn func() (T, error)) (T, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		return wait(ctx, c, true)
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	go g.run(key, c, fn)

	v, err, shared := wait(ctx, c, false)
	if !shared {
		g.mu.Lock()
		shared = c.dups > 0
		g.mu.Unlock()
	}
	return v, err, shared
}

func (g *SingleFlight[T]) run(key string, c *call[T], fn func() (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
}

func wait[T any](ctx context.Context, c *call[T], shared bool) (T, error, bool) {
	select {
	case <-c.done:
		return c.val, c.err, shared
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err(), shared
	}
}
