package session

import "net"

// Transport is the minimal surface the Session Handler needs from a
// connected client: framed message send/receive plus an address for logging. The
// concrete implementation wraps golang.org/x/net/websocket.Conn, which
// already satisfies net.Conn; this interface exists so the handler can be
// tested against an in-memory pipe without pulling in the HTTP upgrade
// machinery. Mirrors the teacher's server/messages.go PlayerConnection
// seam.
type Transport interface {
	ReadMessage() ([]byte, error)
	WriteMessage([]byte) error
	Close() error
	RemoteAddr() net.Addr
}
