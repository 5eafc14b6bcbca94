// Command gameserver boots the actor system, broadcast loop and HTTP/
// WebSocket surface. Grounded on the teacher's main.go boot sequence
// (build dependencies -> spawn background actor/loop -> register handlers
// -> serve) and original_source/src/main.rs's route layout.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/gameserver/internal/actor"
	"github.com/lguibr/gameserver/internal/auth"
	"github.com/lguibr/gameserver/internal/auth/chain"
	"github.com/lguibr/gameserver/internal/broadcast"
	"github.com/lguibr/gameserver/internal/config"
	"github.com/lguibr/gameserver/internal/registry"
	"github.com/lguibr/gameserver/internal/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

func main() {
	log := logrus.WithField("component", "main")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	log.Infof("configuration loaded: port=%s debug=%v tickrate=%v", cfg.Port, cfg.DebugMode, cfg.Tickrate)

	var verifier chain.Verifier
	if cfg.DebugMode {
		log.Warn("DEBUG_MODE enabled: wallet signatures are NOT verified")
		verifier = chain.DebugVerifier{}
	} else {
		verifier = chain.NewRPCVerifier(cfg.RPCURL, cfg.TokenMint)
	}
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authHandler := auth.NewHandler(tokens, verifier, cfg.RequireTokenOwn)

	system := actor.NewSystem("user", 256)
	connections := registry.New()
	sessionHandler := session.NewHandler(system, connections)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := broadcast.NewLoop(system, connections, cfg.Tickrate)
	go loop.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/auth", authHandler)
	mux.Handle("/game", websocket.Handler(func(ws *websocket.Conn) {
		handleGameConnection(ws, tokens, sessionHandler, cfg.DebugMode, log)
	}))
	mux.HandleFunc("/debug/players", handleDebugPlayers(connections))
	mux.HandleFunc("/", handleHealthCheck)

	addr := ":" + cfg.Port
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Infof("gameserver listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
	cancel()
}

// handleGameConnection authenticates the websocket's session token (carried
// in the "token" query parameter, set by the client from the /auth
// response) before handing the connection to the Session Handler.
func handleGameConnection(ws *websocket.Conn, tokens *auth.TokenService, handler *session.Handler, debugMode bool, log *logrus.Entry) {
	defer ws.Close()

	token := ws.Request().URL.Query().Get("token")
	claims, err := tokens.Authenticate(token, debugMode)
	if err != nil {
		log.WithError(err).Warn("rejecting websocket: invalid session token")
		return
	}

	handler.Serve(&wsTransport{ws}, claims)
}

func handleDebugPlayers(connections *registry.Connections) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"connections": connections.Count(),
			"player_ids":  connections.ListIDs(),
		})
	}
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
