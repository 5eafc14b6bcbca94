package actor

import (
	"errors"
	"testing"
	"time"
)

// flakyActor fails PreStart a fixed number of times before succeeding.
type flakyActor struct {
	failuresLeft int
	attempts     int
	started      chan struct{}
}

func (a *flakyActor) PreStart(ctx *Context) error {
	a.attempts++
	if a.failuresLeft > 0 {
		a.failuresLeft--
		return errors.New("not ready yet")
	}
	close(a.started)
	return nil
}

func (a *flakyActor) SupervisionPolicy() SupervisionPolicy {
	return RetryPolicy(NewNoIntervalStrategy(5))
}

func (a *flakyActor) Receive(ctx *Context) {}

func TestSupervision_RetryPolicyRecoversFromTransientPreStartFailure(t *testing.T) {
	sys := NewSystem("user", 8)
	a := &flakyActor{failuresLeft: 2, started: make(chan struct{})}

	if _, err := sys.CreateActor("flaky", a); err != nil {
		t.Fatalf("CreateActor: %v", err)
	}

	select {
	case <-a.started:
	case <-time.After(time.Second):
		t.Fatal("actor never recovered despite retry policy")
	}
	if a.attempts != 3 {
		t.Fatalf("attempts = %d, want 3 (1 initial + 2 retries)", a.attempts)
	}
}

// alwaysFailsActor never succeeds, so the Runner must give up once
// MaxRetries is exhausted rather than retrying forever.
type alwaysFailsActor struct {
	attempts int
}

func (a *alwaysFailsActor) PreStart(ctx *Context) error {
	a.attempts++
	return errors.New("permanently broken")
}

func (a *alwaysFailsActor) SupervisionPolicy() SupervisionPolicy {
	return RetryPolicy(NewNoIntervalStrategy(3))
}

func (a *alwaysFailsActor) Receive(ctx *Context) {}

func TestSupervision_GivesUpAfterMaxRetries(t *testing.T) {
	sys := NewSystem("user", 8)
	a := &alwaysFailsActor{}

	ref, err := sys.CreateActor("broken", a)
	if err != nil {
		t.Fatalf("CreateActor: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		sys.mu.RLock()
		_, live := sys.actors[ref.Path().String()]
		sys.mu.RUnlock()
		if !live {
			break
		}
		select {
		case <-deadline:
			t.Fatal("actor was never deregistered after exhausting retries")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if a.attempts != 4 {
		t.Fatalf("attempts = %d, want 4 (1 initial + 3 retries)", a.attempts)
	}
}

// noRetryActor has no SupervisionPolicy method, so a failed PreStart falls
// back to the default StopPolicy() and is never retried.
type noRetryActor struct {
	attempts int
	started  chan struct{}
}

func (a *noRetryActor) PreStart(ctx *Context) error {
	a.attempts++
	return errors.New("never recovers")
}

func (a *noRetryActor) Receive(ctx *Context) {}

func TestSupervision_StopPolicyDoesNotRetry(t *testing.T) {
	sys := NewSystem("user", 8)
	a := &noRetryActor{started: make(chan struct{})}

	if _, err := sys.CreateActor("no-retry", a); err != nil {
		t.Fatalf("CreateActor: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	if a.attempts != 1 {
		t.Fatalf("attempts = %d, want 1 (no retries under StopPolicy)", a.attempts)
	}
}
