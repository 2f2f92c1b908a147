package vessel

import (
	"reflect"

	"github.com/sasha-s/go-deadlock"
)

// Projection is a read-only derived view of one slice of a container's
// value. It re-evaluates on every container notification but forwards to
// its own subscribers only when the derived value actually changed, so a
// consumer can subscribe narrowly and skip unrelated updates.
type Projection[R any] struct {
	mu        deadlock.RWMutex
	read      func() R
	last      R
	equals    func(R, R) bool
	listeners []listener[R]
	nextID    int
	detach    func()
	disposed  bool
}

// Select derives a projection of c through pick. The projection holds the
// single subscription against c; reading or subscribing to the projection
// never registers the caller with the container itself.
func Select[T, R any](c *Container[T], pick func(T) R) *Projection[R] {
	p := &Projection[R]{
		read: func() R {
			return pick(c.Get())
		},
		equals: func(a, b R) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	p.last = p.read()
	p.detach = c.Subscribe(func(v T) {
		p.forward(pick(v))
	})
	return p
}

// SetEqualityFn replaces the change-detection equality function.
func (p *Projection[R]) SetEqualityFn(fn func(R, R) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.equals = fn
}

// Get evaluates the projection against the container's current value.
func (p *Projection[R]) Get() R {
	return p.read()
}

// forward compares next against the last value seen and notifies
// subscribers only on change. It runs on the container's dispatch path,
// so deliveries inherit the container's replacement order.
func (p *Projection[R]) forward(next R) {
	p.mu.Lock()
	if p.disposed || p.equals(p.last, next) {
		p.mu.Unlock()
		return
	}
	p.last = next
	targets := make([]listener[R], len(p.listeners))
	copy(targets, p.listeners)
	p.mu.Unlock()
	for _, l := range targets {
		l.fn(next)
	}
}

// Subscribe registers fn to be invoked each time the projected value
// changes. It returns the deregistration function.
func (p *Projection[R]) Subscribe(fn func(R)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return func() {}
	}
	id := p.nextID
	p.nextID++
	p.listeners = append(p.listeners, listener[R]{id: id, fn: fn})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispose detaches the projection from its container and drops its
// subscribers. Get keeps working against the container's current value.
func (p *Projection[R]) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	p.listeners = nil
	detach := p.detach
	p.detach = nil
	p.mu.Unlock()
	if detach != nil {
		detach()
	}
}
