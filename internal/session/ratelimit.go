package session

import (
	"sync"
	"time"

	"github.com/lguibr/gameserver/internal/model"
)

// moveLimiter enforces a fixed-window cap on Move messages per connection.
// Transliterated from the original's move_count/window_start bookkeeping in
// handlers/websocket.rs::process_message rather than built on
// golang.org/x/time/rate, whose token-bucket refill does not reproduce the
// original's hard reset-on-rollover semantics (see DESIGN.md).
type moveLimiter struct {
	mu          sync.Mutex
	windowStart time.Time
	count       uint32
}

func newMoveLimiter() *moveLimiter {
	return &moveLimiter{windowStart: time.Now()}
}

// Allow reports whether one more Move may be processed in the current
// window, advancing to a fresh window once RateLimitWindowMS has elapsed.
func (l *moveLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.windowStart) >= model.RateLimitWindowMS {
		l.windowStart = now
		l.count = 0
	}

	if l.count >= model.MaxMovesPerSecond {
		return false
	}
	l.count++
	return true
}
