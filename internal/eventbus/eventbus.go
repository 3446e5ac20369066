// ABOUTME: Typed event bus delivering events to subscribers in subscription order
// ABOUTME: Subscribe returns an idempotent unsubscribe; Close tears down all subscribers

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      uint64
	handler Handler[T]
}

// Bus is a typed event bus that delivers events to registered handlers.
// The zero value is not usable; call New.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID uint64
	closed bool
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Subscribing to a closed bus returns a no-op unsubscribe and the handler
// is never called.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	if b.closed || handler == nil {
		b.mu.Unlock()
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

// Publish sends an event to all registered handlers, synchronously and in
// the order they subscribed. Handlers may subscribe or unsubscribe while
// being called; changes apply from the next Publish.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := make([]Handler[T], len(b.subs))
	for i, s := range b.subs {
		snapshot[i] = s.handler
	}
	b.mu.RUnlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close drops every subscriber. Later Publish calls deliver nothing and
// later Subscribe calls are ignored. Close is idempotent.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	b.subs = nil
	b.closed = true
	b.mu.Unlock()
}

func (b *Bus[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}
