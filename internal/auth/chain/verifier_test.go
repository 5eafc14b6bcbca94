package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugVerifier_AlwaysAccepts(t *testing.T) {
	var v Verifier = DebugVerifier{}

	ok, err := v.VerifySignature(context.Background(), "wallet", "msg", "sig")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyTokenOwnership(context.Background(), "wallet")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRPCVerifier_VerifySignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "verifySignature", req.Method)

		resp := rpcResponse{Result: json.RawMessage("true")}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	v := NewRPCVerifier(srv.URL, "mint-address")
	ok, err := v.VerifySignature(context.Background(), "wallet", "message", "sig")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRPCVerifier_VerifyTokenOwnership(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := rpcResponse{Result: json.RawMessage(`{"amount":"42"}`)}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	v := NewRPCVerifier(srv.URL, "mint-address")
	ok, err := v.VerifyTokenOwnership(context.Background(), "wallet")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRPCVerifier_PropagatesRPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := rpcResponse{Error: &struct {
			Message string `json:"message"`
		}{Message: "boom"}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	v := NewRPCVerifier(srv.URL, "mint-address")
	_, err := v.VerifySignature(context.Background(), "wallet", "message", "sig")
	assert.Error(t, err)
}
