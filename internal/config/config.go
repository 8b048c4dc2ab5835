// Package config loads the small set of environment variables the
// spongebench tool and the integration tests share, the
// way the client this project descends from loaded its API key and base
// URL: environment variables first, with an optional .env file loaded
// ahead of time by the caller.
package config

import (
	"os"
	"strconv"
)

const (
	defaultWidth       = 9
	defaultDomainLabel = "safe-go/examples/v1"
)

// Config holds the sponge width and domain separator label spongebench
// and the integration tests build their capability bundle and io pattern
// around.
type Config struct {
	// Width is the total sponge width (capacity cell plus rate).
	Width int
	// DomainLabel becomes the domain separator bytes for Start.
	DomainLabel string
	// KEMSeed holds SAFE_GO_KEM_SEED verbatim (empty when unset). No
	// package in this module reads it.
	KEMSeed string
}

// Load reads SAFE_GO_WIDTH, SAFE_GO_DOMAIN, and SAFE_GO_KEM_SEED from the
// environment, falling back to defaults for the first two. Callers that
// want .env support should call godotenv.Load before Load.
func Load() Config {
	cfg := Config{
		Width:       defaultWidth,
		DomainLabel: defaultDomainLabel,
	}

	if v := os.Getenv("SAFE_GO_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			cfg.Width = n
		}
	}
	if v := os.Getenv("SAFE_GO_DOMAIN"); v != "" {
		cfg.DomainLabel = v
	}
	cfg.KEMSeed = os.Getenv("SAFE_GO_KEM_SEED")

	return cfg
}
