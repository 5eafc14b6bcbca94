// Package config loads server configuration from the environment via
// viper, mirroring the teacher's utils/config.go layering and the
// original's config.rs::ServerConfig::from_env.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved runtime configuration for the gameserver
// entrypoint.
type Config struct {
	Port            string
	DebugMode       bool
	RPCURL          string
	TokenMint       string
	JWTSecret       string
	Tickrate        time.Duration
	RequireTokenOwn bool
}

// Load reads configuration from environment variables (with the same names
// as the original Rust server), applying sane development defaults for
// anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	v.SetDefault("PORT", "9000")
	v.SetDefault("DEBUG_MODE", false)
	v.SetDefault("SOLANA_RPC_URL", "")
	v.SetDefault("TOKEN_MINT_ADDRESS", "")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("TICKRATE_MS", 4)
	v.SetDefault("REQUIRE_TOKEN_OWNERSHIP", false)

	cfg := Config{
		Port:            v.GetString("PORT"),
		DebugMode:       v.GetBool("DEBUG_MODE"),
		RPCURL:          v.GetString("SOLANA_RPC_URL"),
		TokenMint:       v.GetString("TOKEN_MINT_ADDRESS"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		Tickrate:        time.Duration(v.GetInt64("TICKRATE_MS")) * time.Millisecond,
		RequireTokenOwn: v.GetBool("REQUIRE_TOKEN_OWNERSHIP"),
	}
	return cfg, nil
}
