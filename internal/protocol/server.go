package protocol

import (
	"encoding/json"

	"github.com/lguibr/gameserver/internal/model"
)

// ServerFrame is anything that can render itself as an externally-tagged
// outbound JSON frame.
type ServerFrame interface {
	MarshalFrame() ([]byte, error)
}

// StateUpdate carries the current snapshot of every tracked player, sent on
// every broadcast tick.
type StateUpdate struct {
	Players []model.PlayerState
}

func (s StateUpdate) MarshalFrame() ([]byte, error) {
	return json.Marshal(struct {
		Type    string               `json:"type"`
		Players []model.PlayerState  `json:"players"`
	}{Type: "StateUpdate", Players: s.Players})
}

// ErrorFrame is sent to a client on an invalid move or a transient failure;
// the connection stays open.
type ErrorFrame struct {
	Message string
}

func (e ErrorFrame) MarshalFrame() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{Type: "Error", Message: e.Message})
}

// Kicked notifies a client it has been flagged for removal. Per
// SPEC_FULL.md's resolved Open Question, sending this frame does not itself
// stop the player actor or close the connection.
type Kicked struct {
	Reason string
}

func (k Kicked) MarshalFrame() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}{Type: "Kicked", Reason: k.Reason})
}
