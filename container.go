// Package vessel provides a small reactive state container: one current
// value replaced wholesale by named actions, observed by callbacks, and
// sliced into derived projections that only notify when their part of the
// value changed.
package vessel

import (
	"reflect"

	"github.com/sasha-s/go-deadlock"
)

// listener pairs a callback with the registration id used to remove it.
type listener[T any] struct {
	id int
	fn func(T)
}

// Container holds a single current value and notifies subscribers every
// time that value is replaced. Replacing the value with one the equality
// function considers equal is a no-op: no swap, no notification.
//
// Notifications are delivered in the order the replacements occurred. A
// replacement made from inside a subscriber callback is queued behind the
// delivery in progress rather than dispatched recursively, so observers
// never see replacements out of order.
type Container[T any] struct {
	mu        deadlock.RWMutex
	value     T
	equals    func(T, T) bool
	listeners []listener[T]
	nextID    int
	queue     []T
	notifying bool
	closed    bool
}

// New creates a container holding initial. Equality defaults to
// reflect.DeepEqual; use SetEqualityFn when the value type supports
// something cheaper.
func New[T any](initial T) *Container[T] {
	return &Container[T]{
		value: initial,
		equals: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
}

// SetEqualityFn replaces the equality function used to detect no-op
// replacements.
func (c *Container[T]) SetEqualityFn(fn func(T, T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.equals = fn
}

// Get returns the current value. It has no side effects and stays
// available while a notification pass is running or an action is
// suspended. A subscriber that calls Get from its callback may see a value
// newer than the one it is being notified with.
func (c *Container[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the current value and notifies subscribers, unless the new
// value equals the current one.
func (c *Container[T]) Set(v T) {
	c.mu.Lock()
	c.publishLocked(v)
}

// Update replaces the current value with fn(current) under a single lock
// acquisition, then notifies. fn runs while the container is locked and
// must not call back into the container.
func (c *Container[T]) Update(fn func(T) T) {
	c.mu.Lock()
	c.publishLocked(fn(c.value))
}

// publishLocked swaps the value, queues the notification, and drains the
// queue if no other caller is already doing so. The lock is held on entry
// and released on every return path.
func (c *Container[T]) publishLocked(v T) {
	if c.equals(c.value, v) {
		c.mu.Unlock()
		return
	}
	c.value = v
	c.queue = append(c.queue, v)
	if c.notifying {
		// The active dispatcher picks this replacement up in order.
		c.mu.Unlock()
		return
	}
	c.notifying = true
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		targets := make([]listener[T], len(c.listeners))
		copy(targets, c.listeners)
		c.mu.Unlock()
		for _, l := range targets {
			l.fn(next)
		}
		c.mu.Lock()
	}
	c.notifying = false
	c.mu.Unlock()
}

// Subscribe registers fn to be invoked with the new value on every
// replacement that occurs after registration, in the order the
// replacements occurred. It returns the deregistration function; calling
// it stops further notifications. Subscribing never blocks on an in-flight
// suspension and is a no-op on a closed container.
func (c *Container[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				break
			}
		}
	}
}

// Close drops all subscribers. The value survives and Get keeps working,
// but nothing is notified anymore and later Subscribe calls return a no-op
// deregistration.
func (c *Container[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.listeners = nil
}
