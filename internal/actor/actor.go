package actor

import "time"

// Actor is the only method every actor must implement: handle one message
// (or lifecycle notification) per invocation, serialized by the Runner.
type Actor interface {
	Receive(ctx *Context)
}

// PreStarter is implemented by actors that need initialization before
// their receive loop begins.
type PreStarter interface {
	PreStart(ctx *Context) error
}

// PreRestarter is implemented by actors with custom restart behavior;
// actors without it simply re-run PreStart on restart.
type PreRestarter interface {
	PreRestart(ctx *Context, cause error) error
}

// PostStopper is implemented by actors that need to run cleanup after their
// receive loop ends. It is infallible by contract: errors encountered here
// are the actor's own business to handle.
type PostStopper interface {
	PostStop(ctx *Context)
}

// Supervised is implemented by actors that want a non-default supervision
// policy for PreStart failures. Actors without it get StopPolicy().
type Supervised interface {
	SupervisionPolicy() SupervisionPolicy
}

// IdleTimeoutActor is implemented by actors whose receive loop should end
// normally (not as an error) after a period of mailbox inactivity.
type IdleTimeoutActor interface {
	IdleTimeout() time.Duration
}
