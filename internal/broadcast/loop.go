// Package broadcast implements the fixed-tick world snapshot fan-out: a
// snapshot maintainer that tracks player state from the event bus, and a
// ticker that periodically pushes the snapshot to every connection.
// Grounded on original_source/src/network/broadcast.rs and the teacher's
// game/game_actor.go's runTickerLoop.
package broadcast

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lguibr/gameserver/internal/actor"
	"github.com/lguibr/gameserver/internal/events"
	"github.com/lguibr/gameserver/internal/model"
	"github.com/lguibr/gameserver/internal/protocol"
	"github.com/lguibr/gameserver/internal/registry"
	"github.com/sirupsen/logrus"
)

// statsInterval is how often the ticker logs an FPS/player/connection
// summary line.
const statsInterval = 5 * time.Second

// Loop owns the shared snapshot table and the two goroutines that maintain
// and broadcast it.
type Loop struct {
	system      *actor.System
	connections *registry.Connections
	tickrate    time.Duration

	mu        sync.RWMutex
	snapshots map[string]model.PlayerState

	log *logrus.Entry
}

// NewLoop builds a broadcast loop backed by system's event bus, fanning out
// via connections at the given tickrate.
func NewLoop(system *actor.System, connections *registry.Connections, tickrate time.Duration) *Loop {
	return &Loop{
		system:      system,
		connections: connections,
		tickrate:    tickrate,
		snapshots:   make(map[string]model.PlayerState),
		log:         logrus.WithField("component", "broadcast.Loop"),
	}
}

// Run starts the snapshot maintainer and the ticker; it blocks until ctx is
// canceled.
func (l *Loop) Run(ctx context.Context) {
	l.log.Infof("starting broadcast loop: %v tickrate (~%.1f FPS)", l.tickrate, float64(time.Second)/float64(l.tickrate))

	stream, cancel := l.system.Subscribe()
	defer cancel()

	go l.maintainSnapshots(ctx, stream)
	l.tick(ctx)
}

func (l *Loop) maintainSnapshots(ctx context.Context, stream <-chan interface{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-stream:
			if !ok {
				return
			}
			l.applyEvent(ev)
		}
	}
}

func (l *Loop) applyEvent(ev interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch e := ev.(type) {
	case events.PlayerJoined:
		nickname := "Player_" + strings.TrimPrefix(e.PlayerID, "player_")
		l.snapshots[e.PlayerID] = model.PlayerState{
			PlayerID:         e.PlayerID,
			Wallet:           e.Wallet,
			Nickname:         nickname,
			Position:         e.Position,
			Velocity:         model.Position{},
			Violations:       0,
			LastUpdate:       time.Now(),
			PreviousPosition: e.Position,
		}
		l.log.Debugf("player %s joined at (%.2f, %.2f, %.2f)", e.PlayerID, e.Position.X, e.Position.Y, e.Position.Z)

	case events.PlayerMoved:
		// A PlayerMoved for an id this maintainer hasn't seen a
		// PlayerJoined for yet (cross-actor ordering is not guaranteed) is
		// dropped silently.
		state, ok := l.snapshots[e.PlayerID]
		if !ok {
			return
		}
		state.PreviousPosition = state.Position
		state.Position = e.Position
		state.Velocity = e.Velocity
		state.LastUpdate = time.Now()
		l.snapshots[e.PlayerID] = state

	case events.PlayerLeft:
		l.log.Debugf("player %s left", e.PlayerID)
		delete(l.snapshots, e.PlayerID)
	}
}

func (l *Loop) tick(ctx context.Context) {
	ticker := time.NewTicker(l.tickrate)
	defer ticker.Stop()

	var tickCount uint64
	lastStatsLog := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tickCount++

			players := l.allPlayers()
			sent := l.connections.Broadcast(protocol.StateUpdate{Players: players})
			_ = sent

			if time.Since(lastStatsLog) >= statsInterval {
				actualFPS := float64(tickCount) / statsInterval.Seconds()
				l.log.Debugf("broadcast: %.1f FPS, %d players, %d connections",
					actualFPS, len(players), l.connections.Count())
				tickCount = 0
				lastStatsLog = time.Now()
			}
		}
	}
}

func (l *Loop) allPlayers() []model.PlayerState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	players := make([]model.PlayerState, 0, len(l.snapshots))
	for _, state := range l.snapshots {
		players = append(players, state)
	}
	return players
}
