package actor

import "sync"

// envelope is one message in transit to an actor: the payload, the sender
// (if any), and an optional one-shot reply channel for Ask.
type envelope struct {
	sender  *Ref
	message interface{}
	reply   chan interface{}
}

// mailbox is a genuinely unbounded, multi-producer/single-consumer FIFO.
// Sends never block and never fail except against a closed mailbox; Go
// channels alone can't express unbounded capacity, so a growable slice-backed
// queue is bridged to a single-capacity delivery channel by a dedicated pump
// goroutine — the same shape as the pack's markInTheAbyss-go-actor mailbox.
type mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*envelope
	closed bool
	out    chan *envelope
}

func newMailbox() *mailbox {
	mb := &mailbox{out: make(chan *envelope)}
	mb.cond = sync.NewCond(&mb.mu)
	go mb.pump()
	return mb
}

func (mb *mailbox) pump() {
	for {
		mb.mu.Lock()
		for len(mb.queue) == 0 && !mb.closed {
			mb.cond.Wait()
		}
		if len(mb.queue) == 0 {
			mb.mu.Unlock()
			close(mb.out)
			return
		}
		env := mb.queue[0]
		mb.queue = mb.queue[1:]
		mb.mu.Unlock()
		mb.out <- env
	}
}

// send enqueues an envelope. It fails only if the mailbox has been closed.
func (mb *mailbox) send(env *envelope) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return &SendError{Reason: "mailbox closed"}
	}
	mb.queue = append(mb.queue, env)
	mb.cond.Signal()
	return nil
}

// close marks the mailbox closed. Any envelopes already queued are still
// delivered; the pump closes the delivery channel once drained. Safe to call
// more than once.
func (mb *mailbox) close() {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return
	}
	mb.closed = true
	mb.cond.Signal()
}

// receive returns the delivery channel; it is closed once the mailbox is
// closed and fully drained ("end of stream").
func (mb *mailbox) receive() <-chan *envelope {
	return mb.out
}
