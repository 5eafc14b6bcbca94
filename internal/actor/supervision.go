package actor

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// SupervisionPolicy defines what the Runner does when an actor's PreStart
// fails. The default, for actors that don't opt into Supervised, is Stop.
type SupervisionPolicy struct {
	retry RetryStrategy // nil means Stop
}

// StopPolicy never retries a failed pre-start.
func StopPolicy() SupervisionPolicy {
	return SupervisionPolicy{}
}

// RetryPolicy retries a failed pre-start using strategy.
func RetryPolicy(strategy RetryStrategy) SupervisionPolicy {
	return SupervisionPolicy{retry: strategy}
}

func (p SupervisionPolicy) shouldRetry() bool {
	return p.retry != nil
}

// RetryStrategy decides how many times, and how long to wait between,
// retries of a failed pre-start.
type RetryStrategy interface {
	// MaxRetries is the maximum number of retries before permanently
	// failing an actor.
	MaxRetries() int
	// NextBackoff returns how long to wait before the next retry. When it
	// returns false the Runner retries without waiting; only MaxRetries
	// bounds the number of retries.
	NextBackoff() (time.Duration, bool)
}

// NoIntervalStrategy retries immediately, up to MaxRetries times.
type NoIntervalStrategy struct {
	maxRetries int
}

func NewNoIntervalStrategy(maxRetries int) *NoIntervalStrategy {
	return &NoIntervalStrategy{maxRetries: maxRetries}
}

func (s *NoIntervalStrategy) MaxRetries() int { return s.maxRetries }

func (s *NoIntervalStrategy) NextBackoff() (time.Duration, bool) { return 0, false }

// FixedIntervalStrategy waits a constant duration between retries.
type FixedIntervalStrategy struct {
	maxRetries int
	duration   time.Duration
}

func NewFixedIntervalStrategy(maxRetries int, duration time.Duration) *FixedIntervalStrategy {
	return &FixedIntervalStrategy{maxRetries: maxRetries, duration: duration}
}

func (s *FixedIntervalStrategy) MaxRetries() int { return s.maxRetries }

func (s *FixedIntervalStrategy) NextBackoff() (time.Duration, bool) {
	return s.duration, true
}

// ExponentialBackoffStrategy wraps cenkalti/backoff/v4's ExponentialBackOff
// for the multiplicative-with-jitter math, matching how the original Rust
// implementation wraps the `backoff` crate for the same strategy. Its
// internal state is shared behind a mutex since a single strategy instance
// may be consulted from the Runner goroutine only, but is kept defensively
// safe for concurrent reuse across actors.
type ExponentialBackoffStrategy struct {
	maxRetries int
	mu         sync.Mutex
	inner      *backoff.ExponentialBackOff
}

func NewExponentialBackoffStrategy(maxRetries int) *ExponentialBackoffStrategy {
	eb := backoff.NewExponentialBackOff()
	return &ExponentialBackoffStrategy{maxRetries: maxRetries, inner: eb}
}

func (s *ExponentialBackoffStrategy) MaxRetries() int { return s.maxRetries }

func (s *ExponentialBackoffStrategy) NextBackoff() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.inner.NextBackOff()
	if d == backoff.Stop {
		return 0, false
	}
	return d, true
}
