// Package events defines the domain events carried on the actor system's
// event bus: a player joining, moving, or leaving. Grounded on
// original_source/src/types.rs::GameEvent.
package events

import "github.com/lguibr/gameserver/internal/model"

// PlayerJoined is published from a player actor's PreStart.
type PlayerJoined struct {
	PlayerID string
	Wallet   string
	Position model.Position
}

// PlayerMoved is published whenever a Move is accepted as valid.
type PlayerMoved struct {
	PlayerID string
	Position model.Position
	Velocity model.Position
}

// PlayerLeft is published from a player actor's PostStop.
type PlayerLeft struct {
	PlayerID string
}
