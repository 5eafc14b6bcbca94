// Package anticheat implements the movement validator: a pure, deterministic
// classifier for a proposed player move. Grounded on
// original_source/src/anticheat/validation.rs, transliterated directly.
package anticheat

import (
	"github.com/lguibr/gameserver/internal/model"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of validating one move.
type Result int

const (
	Valid Result = iota
	SpeedHack
	Teleport
	OutOfBounds
)

func (r Result) String() string {
	switch r {
	case Valid:
		return "Valid"
	case SpeedHack:
		return "SpeedHack"
	case Teleport:
		return "Teleport"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// speedLeniency is the margin applied to a player's declared max speed to
// tolerate client-side jitter before a move counts as a speed hack.
const speedLeniency = 3.0

// Validate classifies a proposed move from oldPos to newPos, in strict
// order: out-of-bounds first, then teleport, then speed hack, else valid.
func Validate(oldPos, newPos, velocity model.Position, deltaTime, maxSpeed float32) Result {
	if !isInBounds(newPos, model.WorldBounds) {
		return OutOfBounds
	}

	distance := oldPos.DistanceTo(newPos)

	if isTeleport(oldPos, newPos, model.TeleportThreshold) {
		return Teleport
	}

	maxAllowed := maxSpeed * deltaTime * speedLeniency
	if distance > maxAllowed {
		logrus.WithFields(logrus.Fields{
			"distance": distance,
			"max":      maxAllowed,
			"dt":       deltaTime,
		}).Debug("speed check failed")
		return SpeedHack
	}

	return Valid
}

// isTeleport reports whether the straight-line distance between two
// positions exceeds maxDistance.
func isTeleport(oldPos, newPos model.Position, maxDistance float32) bool {
	return oldPos.DistanceTo(newPos) > maxDistance
}

// isInBounds reports whether every coordinate of pos is within [-bounds, bounds].
func isInBounds(pos model.Position, bounds float32) bool {
	return abs(pos.X) <= bounds && abs(pos.Y) <= bounds && abs(pos.Z) <= bounds
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
