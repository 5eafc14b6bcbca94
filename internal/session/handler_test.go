package session

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/lguibr/gameserver/internal/actor"
	"github.com/lguibr/gameserver/internal/auth"
	"github.com/lguibr/gameserver/internal/broadcast"
	"github.com/lguibr/gameserver/internal/events"
	"github.com/lguibr/gameserver/internal/model"
	"github.com/lguibr/gameserver/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is an in-memory Transport for driving the read/write loops
// without a real socket.
type fakeTransport struct {
	inbound  chan []byte
	outbound chan []byte
	closed   chan struct{}
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		inbound:  make(chan []byte, 8),
		outbound: make(chan []byte, 8),
		closed:   make(chan struct{}),
	}
}

func (f *fakeTransport) ReadMessage() ([]byte, error) {
	select {
	case msg, ok := <-f.inbound:
		if !ok {
			return nil, net.ErrClosed
		}
		return msg, nil
	case <-f.closed:
		return nil, net.ErrClosed
	}
}

func (f *fakeTransport) WriteMessage(payload []byte) error {
	select {
	case f.outbound <- payload:
		return nil
	case <-f.closed:
		return net.ErrClosed
	}
}

func (f *fakeTransport) Close() error {
	select {
	case <-f.closed:
	default:
		close(f.closed)
	}
	return nil
}

func (f *fakeTransport) RemoteAddr() net.Addr {
	return &net.IPAddr{IP: net.IPv4(127, 0, 0, 1)}
}

func TestHandler_MoveIsBroadcastAsState(t *testing.T) {
	sys := actor.NewSystem("user", 16)
	conns := registry.New()
	h := NewHandler(sys, conns)

	loop := broadcast.NewLoop(sys, conns, model.DefaultTickrate)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	transport := newFakeTransport()
	claims := auth.Claims{PlayerID: "player_1", WalletAddress: "wallet-1", Nickname: "Nick"}

	go h.Serve(transport, claims)

	moveFrame, err := json.Marshal(map[string]interface{}{
		"type":       "Move",
		"position":   map[string]float32{"x": 1, "y": 0, "z": 0},
		"velocity":   map[string]float32{"x": 5, "y": 0, "z": 0},
		"delta_time": 0.1,
	})
	require.NoError(t, err)

	transport.inbound <- moveFrame

	select {
	case out := <-transport.outbound:
		var frame map[string]interface{}
		require.NoError(t, json.Unmarshal(out, &frame))
		assert.Contains(t, []string{"StateUpdate", "Error", "Kicked"}, frame["type"])
	case <-time.After(time.Second):
		t.Fatal("expected at least one outbound frame after a valid move")
	}

	transport.Close()
}

func TestHandler_ReconnectRetiresPreviousActor(t *testing.T) {
	sys := actor.NewSystem("user", 16)
	conns := registry.New()
	h := NewHandler(sys, conns)

	stream, cancelSub := sys.Subscribe()
	defer cancelSub()

	claims := auth.Claims{PlayerID: "player_2", WalletAddress: "wallet-2", Nickname: "Nick"}

	first := newFakeTransport()
	done := make(chan struct{})
	go func() {
		h.Serve(first, claims)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, conns.Count())

	second := newFakeTransport()
	go h.Serve(second, claims)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, conns.Count())

	sawLeft := false
	deadline := time.After(time.Second)
	for !sawLeft {
		select {
		case ev := <-stream:
			if left, ok := ev.(events.PlayerLeft); ok && left.PlayerID == claims.PlayerID {
				sawLeft = true
			}
		case <-deadline:
			t.Fatal("expected the previous actor to stop and publish PlayerLeft")
		}
	}

	first.Close()
	second.Close()
}
