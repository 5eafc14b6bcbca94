package actor

import (
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

// runner drives one actor's full lifecycle: pre-start (with retry
// supervision), the receive loop, post-stop, deregistration and mailbox
// cleanup.
type runner struct {
	path    Path
	actor   Actor
	mbox    *mailbox
	selfRef *Ref
	system  *System
}

func (r *runner) run() {
	log := logrus.WithField("actor", r.path.String())
	log.Debug("starting actor")

	ctx := &Context{system: r.system, self: r.path, selfRef: r.selfRef}

	if r.preStart(ctx, log) {
		log.Debug("actor started successfully")
		r.receiveLoop(ctx, log)

		if stopper, ok := r.actor.(PostStopper); ok {
			stopper.PostStop(ctx)
		}
	}

	r.system.removeActor(r.path)
	r.mbox.close()
	log.Debug("actor stopped")
}

// preStart runs PreStart, applying the actor's supervision policy on
// failure. It returns true if the actor is ready for its receive loop.
func (r *runner) preStart(ctx *Context, log *logrus.Entry) bool {
	starter, ok := r.actor.(PreStarter)
	if !ok {
		return true
	}

	err := starter.PreStart(ctx)
	if err == nil {
		return true
	}

	policy := StopPolicy()
	if supervised, ok := r.actor.(Supervised); ok {
		policy = supervised.SupervisionPolicy()
	}

	if !policy.shouldRetry() {
		log.WithError(err).Error("actor failed to start")
		return false
	}

	strategy := policy.retry
	log.WithError(err).Debug("restarting actor with retry strategy")

	retries := 0
	for retries < strategy.MaxRetries() && err != nil {
		if d, ok := strategy.NextBackoff(); ok {
			log.Debugf("backoff for %v", d)
			time.Sleep(d)
		}
		retries++

		restarter, hasCustom := r.actor.(PreRestarter)
		if hasCustom {
			err = restarter.PreRestart(ctx, err)
		} else {
			err = starter.PreStart(ctx)
		}
	}

	return err == nil
}

func (r *runner) receiveLoop(ctx *Context, log *logrus.Entry) {
	ch := r.mbox.receive()

	idleTimeout, hasTimeout := time.Duration(0), false
	if idler, ok := r.actor.(IdleTimeoutActor); ok {
		idleTimeout, hasTimeout = idler.IdleTimeout(), true
	}

	for {
		var (
			env *envelope
			ok  bool
		)
		if hasTimeout {
			select {
			case env, ok = <-ch:
			case <-time.After(idleTimeout):
				log.Debugf("actor timed out after %v of inactivity", idleTimeout)
				return
			}
		} else {
			env, ok = <-ch
		}
		if !ok {
			return
		}
		if r.dispatch(ctx, env, log) {
			return
		}
	}
}

// dispatch invokes the actor's Receive for one envelope, recovering from
// panics so that a single bad message terminates only this actor.
func (r *runner) dispatch(ctx *Context, env *envelope, log *logrus.Entry) (panicked bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("actor panic: %v\n%s", rec, debug.Stack())
			panicked = true
		}
	}()

	ctx.sender = env.sender
	ctx.message = env.message
	ctx.reply = env.reply

	r.actor.Receive(ctx)
	return false
}
