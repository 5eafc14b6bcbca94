package actor

import "context"

// Ref is a cheap, clonable handle to a live (or recently-live) actor: just a
// path and a mailbox. Copying a Ref is always safe.
type Ref struct {
	path Path
	mbox *mailbox
}

// Path returns the addressed actor's path.
func (r *Ref) Path() Path {
	return r.path
}

// Tell enqueues msg for the actor and returns immediately. It fails only if
// the actor's mailbox has already been closed.
func (r *Ref) Tell(msg interface{}) error {
	return r.tellFrom(nil, msg)
}

func (r *Ref) tellFrom(sender *Ref, msg interface{}) error {
	return r.mbox.send(&envelope{sender: sender, message: msg})
}

// Ask enqueues msg and awaits a reply sent via Context.Reply from within the
// actor's handler. It has no intrinsic timeout; callers wrap it with a
// context deadline when one is needed.
func (r *Ref) Ask(ctx context.Context, msg interface{}) (interface{}, error) {
	reply := make(chan interface{}, 1)
	if err := r.mbox.send(&envelope{message: msg, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsClosed reports whether the actor's mailbox has been closed.
func (r *Ref) IsClosed() bool {
	r.mbox.mu.Lock()
	defer r.mbox.mu.Unlock()
	return r.mbox.closed
}
