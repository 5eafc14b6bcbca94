// Package session ties one client connection to a player actor: it takes
// the claims of an already-authenticated session token, hot-swaps a
// reconnecting player onto a fresh
// actor and sink, rate-limits inbound Move frames, and drives the read
// loop. Grounded on original_source/src/handlers/websocket.rs::
// handle_connection and the teacher's server/connection_handler.go.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/lguibr/gameserver/internal/actor"
	"github.com/lguibr/gameserver/internal/auth"
	"github.com/lguibr/gameserver/internal/player"
	"github.com/lguibr/gameserver/internal/protocol"
	"github.com/lguibr/gameserver/internal/registry"
	"github.com/sirupsen/logrus"
)

// reconnectGrace is how long the handler waits after stopping a stale actor
// before spawning its replacement, giving the old Runner's PostStop a
// chance to finish publishing PlayerLeft before PlayerJoined fires again.
const reconnectGrace = 10 * time.Millisecond

// outboundBufferSize bounds how many frames may be queued for a slow
// reader before the player actor starts dropping them.
const outboundBufferSize = 256

// Handler owns one authenticated connection's lifecycle.
type Handler struct {
	system      *actor.System
	connections *registry.Connections
	log         *logrus.Entry
}

// NewHandler builds a session handler sharing system and connections with
// the broadcast loop.
func NewHandler(system *actor.System, connections *registry.Connections) *Handler {
	return &Handler{
		system:      system,
		connections: connections,
		log:         logrus.WithField("component", "session.Handler"),
	}
}

// Serve drives transport for the player identified by claims (already
// authenticated by the caller) until it disconnects or the read loop errors
// out. Before returning it removes the sink and stops the actor, unless a
// reconnect has already replaced them with its own.
func (h *Handler) Serve(transport Transport, claims auth.Claims) {
	log := h.log.WithField("player", claims.PlayerID)
	log.Infof("session starting for %s from %s", claims.Nickname, transport.RemoteAddr())

	sink := make(registry.Sink, outboundBufferSize)
	playerPath := playerActorPath(claims.PlayerID)

	// Hot-swap: a reconnecting player's previous actor/sink are torn down
	// before the new ones take their place.
	if existing, ok := actor.GetActor[*player.Actor](h.system, playerPath); ok {
		log.Info("reconnect detected, retiring previous session")
		h.connections.Remove(claims.PlayerID)
		h.system.StopActor(existing.Path())
		time.Sleep(reconnectGrace)
	}

	h.connections.Add(claims.PlayerID, sink)
	ref, err := h.system.CreateActorPath(playerPath, player.New(claims.PlayerID, claims.WalletAddress, claims.Nickname, sink))
	if err != nil {
		h.connections.Remove(claims.PlayerID)
		log.WithError(err).Error("failed to create player actor")
		return
	}

	defer func() {
		// A reconnect may have already replaced this session's actor and
		// sink by the time this session's own read loop notices its
		// transport died; only tear down state that still belongs to us.
		if current, ok := actor.GetActor[*player.Actor](h.system, playerPath); !ok || current == ref {
			h.connections.Remove(claims.PlayerID)
			h.system.StopActor(playerPath)
		}
		log.Info("session ended")
	}()

	done := make(chan struct{})
	go h.writeLoop(transport, sink, done)
	defer close(done)

	h.readLoop(transport, ref, log)
}

// writeLoop drains sink to the transport until done is closed or the write
// fails.
func (h *Handler) writeLoop(transport Transport, sink registry.Sink, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload, ok := <-sink:
			if !ok {
				return
			}
			if err := transport.WriteMessage(payload); err != nil {
				return
			}
		}
	}
}

// readLoop decodes inbound frames and forwards them to ref until the
// transport closes or returns a fatal error.
func (h *Handler) readLoop(transport Transport, ref *actor.Ref, log *logrus.Entry) {
	limiter := newMoveLimiter()

	for {
		raw, err := transport.ReadMessage()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Debug("read loop ending")
			}
			return
		}

		msg, err := protocol.DecodeClientMessage(raw)
		if err != nil {
			log.WithError(err).Debug("dropping malformed client frame")
			continue
		}

		switch msg.Type {
		case "Move":
			if !limiter.Allow() {
				log.Debug("move rate limit exceeded, dropping frame")
				continue
			}
			_ = ref.Tell(player.Move{
				Position:  msg.Position,
				Velocity:  msg.Velocity,
				DeltaTime: msg.DeltaTime,
			})
		case "GetState":
			// No-op: clients receive state through the broadcast loop's
			// StateUpdate frames.
		}
	}
}

func playerActorPath(playerID string) actor.Path {
	return actor.PathFromString("/user").Child("player-" + playerID)
}
