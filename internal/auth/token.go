package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lguibr/gameserver/internal/model"
)

// tokenClaims adapts Claims to jwt.Claims so it can be signed/parsed
// directly by golang-jwt without an intermediate map.
type tokenClaims struct {
	Claims
}

func (c tokenClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}
func (c tokenClaims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c tokenClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c tokenClaims) GetIssuer() (string, error)              { return "", nil }
func (c tokenClaims) GetSubject() (string, error)             { return c.WalletAddress, nil }
func (c tokenClaims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// TokenService issues and verifies HMAC-signed session tokens, mirroring
// the original's jsonwebtoken::encode/decode with HS256 in
// handlers/auth.rs.
type TokenService struct {
	secret []byte
}

// NewTokenService builds a TokenService signing with secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue mints a session token for a verified wallet address. playerID is
// derived deterministically from the wallet so a reconnecting client maps
// back onto the same actor path; nickname defaults to a short form of the
// wallet when empty.
func (s *TokenService) Issue(walletAddress, nickname string) (SessionInfo, error) {
	if nickname == "" {
		nickname = shortNickname(walletAddress)
	}

	claims := Claims{
		WalletAddress: walletAddress,
		PlayerID:      playerIDForWallet(walletAddress),
		Nickname:      nickname,
		ExpiresAt:     time.Now().Add(model.TokenExpirationHours * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{claims})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return SessionInfo{}, fmt.Errorf("auth: sign token: %w", err)
	}

	return SessionInfo{
		Token:     signed,
		Nickname:  nickname,
		CreatedAt: time.Now(),
	}, nil
}

// IssueDebug mints a token for a synthetic, unverified identity used only
// when the server runs with DebugMode enabled. The wallet address is a
// random UUID so repeated debug connections don't collide.
func (s *TokenService) IssueDebug(nickname string) (SessionInfo, error) {
	return s.Issue("debug-"+uuid.NewString(), nickname)
}

// debugTokenPrefix marks a session token as a synthetic debug identity
// rather than a signed JWT; only honored when the server runs with
// DebugMode enabled. Mirrors original_source/src/handlers/websocket.rs's
// authenticate().
const debugTokenPrefix = "debug_"

// Authenticate resolves claims for an inbound session token. In debug mode,
// a token prefixed "debug_" bypasses JWT verification entirely and
// synthesizes a fresh random identity (a new player_id/wallet each time,
// so repeated debug connections never collide); any other token still goes
// through ordinary Verify.
func (s *TokenService) Authenticate(raw string, debugMode bool) (Claims, error) {
	if debugMode && strings.HasPrefix(raw, debugTokenPrefix) {
		sessionID := uuid.NewString()
		return Claims{
			WalletAddress: debugTokenPrefix + sessionID,
			PlayerID:      "player_" + sessionID,
			Nickname:      "Player_" + sessionID,
			ExpiresAt:     time.Now().Add(model.TokenExpirationHours * time.Hour).Unix(),
		}, nil
	}
	return s.Verify(raw)
}

// Verify parses and validates a token's signature and expiry, returning its
// claims.
func (s *TokenService) Verify(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("auth: verify token: %w", err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Claims{}, fmt.Errorf("auth: invalid token")
	}
	return claims.Claims, nil
}

func playerIDForWallet(wallet string) string {
	return "player_" + strings.ToLower(wallet)
}

func shortNickname(wallet string) string {
	if len(wallet) <= 8 {
		return wallet
	}
	return wallet[:4] + ".." + wallet[len(wallet)-4:]
}
