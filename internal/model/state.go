package model

import "time"

// PlayerState is the snapshot form of a player broadcast to every client on
// each tick. LastUpdate and PreviousPosition are process-local bookkeeping
// and are never serialized, matching #[serde(skip)] on the original's
// types.rs::PlayerState.
type PlayerState struct {
	PlayerID string   `json:"player_id"`
	Wallet   string   `json:"wallet"`
	Nickname string   `json:"nickname"`
	Position Position `json:"position"`
	Velocity Position `json:"velocity"`
	Violations uint32 `json:"violations"`

	LastUpdate       time.Time `json:"-"`
	PreviousPosition Position  `json:"-"`
}
