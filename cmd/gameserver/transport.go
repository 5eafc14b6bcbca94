package main

import (
	"net"

	"golang.org/x/net/websocket"
)

// wsTransport adapts golang.org/x/net/websocket.Conn to session.Transport,
// using websocket.Message for frame-oriented send/receive rather than the
// raw io.Reader/Writer surface.
type wsTransport struct {
	ws *websocket.Conn
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	var payload []byte
	if err := websocket.Message.Receive(t.ws, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (t *wsTransport) WriteMessage(payload []byte) error {
	return websocket.Message.Send(t.ws, payload)
}

func (t *wsTransport) Close() error {
	return t.ws.Close()
}

func (t *wsTransport) RemoteAddr() net.Addr {
	return t.ws.RemoteAddr()
}
