// Package protocol defines the JSON wire frames exchanged with connected
// clients: externally-tagged client -> server and server -> client
// messages. Grounded on original_source/src/types.rs::ClientMessage/
// ServerMessage (#[serde(tag = "type")]).
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/lguibr/gameserver/internal/model"
)

// ClientMessage is the decoded form of one inbound client frame.
type ClientMessage struct {
	Type string

	// Move fields, populated when Type == "Move".
	Position  model.Position
	Velocity  model.Position
	DeltaTime float32
}

type clientEnvelope struct {
	Type      string          `json:"type"`
	Position  model.Position  `json:"position"`
	Velocity  model.Position  `json:"velocity"`
	DeltaTime float32         `json:"delta_time"`
}

// DecodeClientMessage parses one inbound text frame. Unknown or malformed
// frames return an error; callers are expected to log and drop these.
func DecodeClientMessage(raw []byte) (ClientMessage, error) {
	var env clientEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ClientMessage{}, err
	}
	switch env.Type {
	case "Move":
		return ClientMessage{
			Type:      "Move",
			Position:  env.Position,
			Velocity:  env.Velocity,
			DeltaTime: env.DeltaTime,
		}, nil
	case "GetState":
		return ClientMessage{Type: "GetState"}, nil
	default:
		return ClientMessage{}, fmt.Errorf("protocol: unknown client message type %q", env.Type)
	}
}
