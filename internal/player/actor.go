// Package player implements the per-player actor: the authoritative state
// machine that accepts movement, reports snapshots, and enforces the
// anti-cheat violation policy. Grounded on
// original_source/src/player/actor.rs and player/state.rs.
package player

import (
	"fmt"
	"time"

	"github.com/lguibr/gameserver/internal/actor"
	"github.com/lguibr/gameserver/internal/anticheat"
	"github.com/lguibr/gameserver/internal/events"
	"github.com/lguibr/gameserver/internal/model"
	"github.com/lguibr/gameserver/internal/protocol"
	"github.com/lguibr/gameserver/internal/registry"
	"github.com/sirupsen/logrus"
)

// Move requests a position/velocity update for the player.
type Move struct {
	Position  model.Position
	Velocity  model.Position
	DeltaTime float32
}

// GetState requests the player's current snapshot via Ask/Reply.
type GetState struct{}

// Kick sends a Kicked frame to the client. It does not stop the actor
// itself (see SPEC_FULL.md §9, resolved Open Question #1); the session
// continues until the client disconnects.
type Kick struct {
	Reason string
}

// SendMessage forwards a raw text payload to the client unmodified.
type SendMessage struct {
	Message string
}

// Actor is one connected player's authoritative state.
type Actor struct {
	PlayerID string
	Wallet   string
	Nickname string

	position   model.Position
	velocity   model.Position
	lastUpdate time.Time
	violations uint32

	outbound registry.Sink
	log      *logrus.Entry
}

// New constructs a player actor starting at the origin, writing outbound
// frames to sink.
func New(playerID, wallet, nickname string, sink registry.Sink) *Actor {
	return &Actor{
		PlayerID: playerID,
		Wallet:   wallet,
		Nickname: nickname,
		outbound: sink,
		log:      logrus.WithField("player", playerID),
	}
}

// PreStart publishes PlayerJoined so the broadcast loop's snapshot
// maintainer can start tracking this player.
func (a *Actor) PreStart(ctx *actor.Context) error {
	a.log.Debugf("player %s (%s) joined at (%.2f, %.2f, %.2f)",
		a.PlayerID, a.Nickname, a.position.X, a.position.Y, a.position.Z)
	ctx.Publish(events.PlayerJoined{
		PlayerID: a.PlayerID,
		Wallet:   a.Wallet,
		Position: a.position,
	})
	return nil
}

// PostStop publishes PlayerLeft so the broadcast loop drops this player
// from the snapshot.
func (a *Actor) PostStop(ctx *actor.Context) {
	a.log.Debugf("player %s (%s) left the game", a.PlayerID, a.Nickname)
	ctx.Publish(events.PlayerLeft{PlayerID: a.PlayerID})
}

// Receive dispatches one message.
func (a *Actor) Receive(ctx *actor.Context) {
	switch msg := ctx.Message().(type) {
	case Move:
		a.handleMove(ctx, msg)
	case GetState:
		ctx.Reply(a.snapshot())
	case Kick:
		a.sendFrame(protocol.Kicked{Reason: msg.Reason})
	case SendMessage:
		a.sendRaw(msg.Message)
	}
}

func (a *Actor) handleMove(ctx *actor.Context, msg Move) {
	result := anticheat.Validate(a.position, msg.Position, msg.Velocity, msg.DeltaTime, model.MaxSpeed)

	switch result {
	case anticheat.Valid:
		a.position = msg.Position
		a.velocity = msg.Velocity
		a.lastUpdate = time.Now()
		a.violations = 0

		a.log.Debugf("player %s moved to (%.2f, %.2f, %.2f)", a.PlayerID, a.position.X, a.position.Y, a.position.Z)

		ctx.Publish(events.PlayerMoved{
			PlayerID: a.PlayerID,
			Position: a.position,
			Velocity: a.velocity,
		})

	case anticheat.SpeedHack:
		a.handleViolation("SPEED HACK", fmt.Sprintf(
			"(%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)",
			a.position.X, a.position.Y, a.position.Z,
			msg.Position.X, msg.Position.Y, msg.Position.Z,
		))

	case anticheat.Teleport:
		a.handleViolation("TELEPORT", fmt.Sprintf("distance: %.2f", a.position.DistanceTo(msg.Position)))

	case anticheat.OutOfBounds:
		a.log.Warnf("player %s out of bounds: (%.2f, %.2f, %.2f)", a.PlayerID, msg.Position.X, msg.Position.Y, msg.Position.Z)
		a.sendFrame(protocol.ErrorFrame{Message: "Position out of bounds"})
	}
}

func (a *Actor) handleViolation(violationType, details string) {
	a.violations++
	a.log.Warnf("player %s %s | %s | violations: %d/%d", a.PlayerID, violationType, details, a.violations, model.MaxViolations)

	a.sendFrame(protocol.ErrorFrame{
		Message: fmt.Sprintf("%s detected. Violations: %d/%d", violationType, a.violations, model.MaxViolations),
	})

	if a.violations >= model.MaxViolations {
		a.log.Errorf("player %s kicked for too many violations", a.PlayerID)
		a.sendFrame(protocol.Kicked{Reason: "Too many anti-cheat violations"})
	}
}

func (a *Actor) snapshot() model.PlayerState {
	return model.PlayerState{
		PlayerID:         a.PlayerID,
		Wallet:           a.Wallet,
		Nickname:         a.Nickname,
		Position:         a.position,
		Velocity:         a.velocity,
		Violations:       a.violations,
		LastUpdate:       a.lastUpdate,
		PreviousPosition: a.position,
	}
}

func (a *Actor) sendFrame(frame protocol.ServerFrame) {
	payload, err := frame.MarshalFrame()
	if err != nil {
		a.log.WithError(err).Error("failed to marshal outbound frame")
		return
	}
	a.pushOutbound(payload)
}

func (a *Actor) sendRaw(text string) {
	a.pushOutbound([]byte(text))
}

func (a *Actor) pushOutbound(payload []byte) {
	select {
	case a.outbound <- payload:
	default:
		a.log.Warn("outbound sink full or closed, dropping frame")
	}
}
