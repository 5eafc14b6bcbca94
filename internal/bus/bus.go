// Package bus implements a bounded, multi-consumer broadcast channel: one
// publisher, many independent subscriber streams, each with its own buffer.
// Publishing never blocks; a subscriber that can't keep up loses events
// rather than stalling the publisher.
package bus

import (
	"sync"
	"sync/atomic"
)

// Bus is a generic broadcast channel over event type T. Grounded on the
// retrieval pack's thushan-olla eventbus.go.go (Subscribe/Publish/Shutdown
// API shape), reimplemented with a plain sync.RWMutex-guarded map instead
// of that example's xsync.Map, to match this module's own idiom for
// concurrent maps (see internal/actor.System, internal/registry).
type Bus[T any] struct {
	mu         sync.RWMutex
	subs       map[uint64]*subscriber[T]
	nextID     uint64
	bufferSize int
}

type subscriber[T any] struct {
	ch      chan T
	dropped atomic.Uint64
}

// New creates a Bus whose subscriber channels each hold up to bufferSize
// pending events before a Publish starts dropping for that subscriber.
func New[T any](bufferSize int) *Bus[T] {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Bus[T]{
		subs:       make(map[uint64]*subscriber[T]),
		bufferSize: bufferSize,
	}
}

// Subscribe returns a fresh channel that only observes events published
// after this call, plus a cleanup function the caller should defer.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	sub := &subscriber[T]{ch: make(chan T, b.bufferSize)}
	b.subs[id] = sub
	b.mu.Unlock()

	cleanup := func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
	return sub.ch, cleanup
}

// Publish fans ev out to every current subscriber without blocking. A
// subscriber whose buffer is full has the event dropped for it (counted as
// "lagged") rather than stalling the publisher or every other subscriber.
func (b *Bus[T]) Publish(ev T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, sub := range b.subs {
		select {
		case sub.ch <- ev:
			delivered++
		default:
			sub.dropped.Add(1)
		}
	}
	return delivered
}

// Shutdown closes every subscriber channel and clears the subscriber set.
// Publishing after Shutdown is a silent no-op.
func (b *Bus[T]) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		close(sub.ch)
		delete(b.subs, id)
	}
}
