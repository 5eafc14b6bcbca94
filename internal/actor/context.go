package actor

// Context is passed to every actor lifecycle and message handler
// invocation. It carries the actor's own path, a handle back into the
// system it lives in, and (during a message dispatch) the sender and
// message being processed.
type Context struct {
	system  *System
	self    Path
	selfRef *Ref

	sender  *Ref
	message interface{}
	reply   chan interface{}
}

// Self returns the path of the actor this context belongs to.
func (c *Context) Self() Path {
	return c.self
}

// SelfRef returns a Ref to the actor this context belongs to.
func (c *Context) SelfRef() *Ref {
	return c.selfRef
}

// Sender returns the Ref of whoever sent the message currently being
// handled, or nil if it was sent without one (e.g. from outside the actor
// system, or via Publish).
func (c *Context) Sender() *Ref {
	return c.sender
}

// Message returns the payload currently being handled.
func (c *Context) Message() interface{} {
	return c.message
}

// System returns the actor system this actor is registered in, for
// creating/stopping children and publishing events.
func (c *Context) System() *System {
	return c.system
}

// Reply answers an Ask call for the message currently being handled. It is
// a no-op if the message was sent via Tell (no reply channel) or if Reply
// has already been called for this invocation.
func (c *Context) Reply(v interface{}) {
	if c.reply == nil {
		return
	}
	select {
	case c.reply <- v:
	default:
	}
	c.reply = nil
}

// CreateChild creates an actor at self/name.
func (c *Context) CreateChild(name string, a Actor) (*Ref, error) {
	return c.system.CreateActorPath(c.self.Child(name), a)
}

// StopChild stops the actor at self/name, if any.
func (c *Context) StopChild(name string) {
	c.system.StopActor(c.self.Child(name))
}

// Publish forwards ev to the system's event bus.
func (c *Context) Publish(ev interface{}) {
	c.system.Publish(ev)
}
