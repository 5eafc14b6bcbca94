// Package registry tracks outbound message sinks for connected players and
// provides the tolerant broadcast helper used by the broadcast loop.
// Grounded on original_source/src/network/connection.rs::ConnectionManager
// and the teacher's game/broadcaster_actor.go's failure-tolerant broadcast.
package registry

import (
	"sync"

	"github.com/lguibr/gameserver/internal/protocol"
)

// Sink is an outbound channel of frames to one connected client. Channel
// values are already cheap to pass around, satisfying the "cheap to clone"
// requirement without a wrapper type.
type Sink chan []byte

// Connections is a process-wide, concurrency-safe map from player id to
// outbound sink.
type Connections struct {
	mu    sync.RWMutex
	sinks map[string]Sink
}

// New returns an empty registry.
func New() *Connections {
	return &Connections{sinks: make(map[string]Sink)}
}

// Add registers (or replaces) the sink for id.
func (c *Connections) Add(id string, sink Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sinks[id] = sink
}

// Remove deregisters id. Idempotent.
func (c *Connections) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sinks, id)
}

// Broadcast encodes frame and sends it to every registered sink, tolerating
// a full or stale sink silently (the owning session will clean itself up on
// its next read failure). Returns the number of successful sends.
func (c *Connections) Broadcast(frame protocol.ServerFrame) int {
	payload, err := frame.MarshalFrame()
	if err != nil {
		return 0
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	sent := 0
	for _, sink := range c.sinks {
		select {
		case sink <- payload:
			sent++
		default:
		}
	}
	return sent
}

// Count returns the number of registered connections.
func (c *Connections) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sinks)
}

// ListIDs returns every currently registered player id.
func (c *Connections) ListIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.sinks))
	for id := range c.sinks {
		ids = append(ids, id)
	}
	return ids
}
