package auth

import (
	"encoding/json"
	"net/http"

	"github.com/lguibr/gameserver/internal/auth/chain"
	"github.com/sirupsen/logrus"
)

// authRequest is the body of POST /auth: a wallet proving ownership of a
// signed challenge message before it is handed a session token.
type authRequest struct {
	WalletAddress string `json:"wallet_address"`
	Message       string `json:"message"`
	Signature     string `json:"signature"`
	Nickname      string `json:"nickname"`
}

// Handler serves the HTTP identity exchange: verify a wallet signature (and
// optionally token ownership) against chain.Verifier, then mint a session
// token via TokenService. Grounded on
// original_source/src/handlers/auth.rs::handle_auth_request.
type Handler struct {
	Tokens       *TokenService
	Verifier     chain.Verifier
	RequireToken bool
	log          *logrus.Entry
}

// NewHandler builds an auth HTTP handler.
func NewHandler(tokens *TokenService, verifier chain.Verifier, requireToken bool) *Handler {
	return &Handler{
		Tokens:       tokens,
		Verifier:     verifier,
		RequireToken: requireToken,
		log:          logrus.WithField("component", "auth.Handler"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if req.WalletAddress == "" || req.Message == "" || req.Signature == "" {
		http.Error(w, "wallet_address, message and signature are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	ok, err := h.Verifier.VerifySignature(ctx, req.WalletAddress, req.Message, req.Signature)
	if err != nil {
		h.log.WithError(err).Warn("signature verification failed")
		http.Error(w, "signature verification unavailable", http.StatusBadGateway)
		return
	}
	if !ok {
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	if h.RequireToken {
		owns, err := h.Verifier.VerifyTokenOwnership(ctx, req.WalletAddress)
		if err != nil {
			h.log.WithError(err).Warn("token ownership check failed")
			http.Error(w, "token ownership check unavailable", http.StatusBadGateway)
			return
		}
		if !owns {
			http.Error(w, "wallet does not hold the required token", http.StatusForbidden)
			return
		}
	}

	session, err := h.Tokens.Issue(req.WalletAddress, req.Nickname)
	if err != nil {
		h.log.WithError(err).Error("failed to issue session token")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(session)
}
