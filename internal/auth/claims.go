// Package auth issues and verifies the JSON Web Tokens that gate the
// websocket upgrade, and brokers wallet-signature verification through the
// chain sub-package. Grounded on original_source/src/handlers/auth.rs and
// src/types.rs.
package auth

import "time"

// Claims is the authenticated identity carried inside a session token.
type Claims struct {
	WalletAddress string `json:"wallet_address"`
	PlayerID      string `json:"player_id"`
	Nickname      string `json:"nickname"`
	ExpiresAt     int64  `json:"exp"`
}

// SessionInfo is returned to the client after a successful /auth exchange.
type SessionInfo struct {
	Token     string    `json:"token"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}
