// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env values.
package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/174hz/duelkings/pickem"
	"github.com/174hz/duelkings/store"
)

// Config holds all application configuration.
type Config struct {
	// DataDir holds pools.json, results.json and entries.json.
	DataDir string
	// WebDir holds the static front end.
	WebDir string

	// ClosingPolicy decides when an open pool closes: at its deadline or
	// when its earliest game starts.
	ClosingPolicy pickem.ClosingPolicy
	// PreviewMode forces every pool open for pick entry (test/preview).
	// In debug builds it can also be toggled per request via the
	// X-Preview-Mode header.
	PreviewMode bool
	// EntriesShape declares how entries.json is keyed: "keyed" (by pool
	// id) or "inline" (flat list carrying poolId).
	EntriesShape string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	// Silently load .env – OK if the file doesn't exist (production uses
	// real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("WEB_DIR", "web")
	v.SetDefault("CLOSING_POLICY", string(pickem.CloseAtDeadline))
	v.SetDefault("PREVIEW_MODE", false)
	v.SetDefault("ENTRIES_SHAPE", store.EntriesKeyed)
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "duelkings.app,www.duelkings.app")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DataDir:       v.GetString("DATA_DIR"),
		WebDir:        v.GetString("WEB_DIR"),
		ClosingPolicy: pickem.ClosingPolicy(v.GetString("CLOSING_POLICY")),
		PreviewMode:   v.GetBool("PREVIEW_MODE"),
		EntriesShape:  v.GetString("ENTRIES_SHAPE"),
		Debug:         v.GetBool("DEBUG"),
		Port:          v.GetString("PORT"),
		TLSDomains:    splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

func (c *Config) validate() {
	if c.DataDir == "" {
		log.Fatal("config: DATA_DIR must be set")
	}
	switch c.ClosingPolicy {
	case pickem.CloseAtDeadline, pickem.CloseAtFirstGame:
	default:
		log.Fatalf("config: CLOSING_POLICY must be %q or %q",
			pickem.CloseAtDeadline, pickem.CloseAtFirstGame)
	}
	switch c.EntriesShape {
	case store.EntriesKeyed, store.EntriesInline:
	default:
		log.Fatalf("config: ENTRIES_SHAPE must be %q or %q",
			store.EntriesKeyed, store.EntriesInline)
	}
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
