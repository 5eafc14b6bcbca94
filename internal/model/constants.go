package model

import "time"

// Frozen gameplay constants. Grounded on original_source/src/types.rs and
// original_source/src/handlers/websocket.rs; values must not drift from
// these.
const (
	// MaxSpeed is the fastest a player is allowed to move per second before
	// a move is flagged as a speed hack (subject to the leniency factor
	// applied in the validator).
	MaxSpeed float32 = 100.0

	// TeleportThreshold is the maximum single-move distance before a move is
	// flagged as a teleport, regardless of elapsed time.
	TeleportThreshold float32 = 300.0

	// MaxViolations is the number of anti-cheat violations a player
	// accumulates before being kicked.
	MaxViolations uint32 = 10

	// WorldBounds is the maximum absolute value of any position coordinate.
	WorldBounds float32 = 1000.0

	// TokenExpirationHours is how long an issued session token remains
	// valid.
	TokenExpirationHours = 24

	// MaxMovesPerSecond is the per-connection rate limit applied to Move
	// frames only.
	MaxMovesPerSecond uint32 = 60

	// RateLimitWindowMS is the length of the rate limiter's window; the
	// per-connection move count resets once it has elapsed.
	RateLimitWindowMS = 1000 * time.Millisecond

	// DefaultTickrate is the broadcast loop's default period when
	// tickrate_ms isn't configured.
	DefaultTickrate = 4 * time.Millisecond
)
