// Package config assembles application configuration from the
// environment. LLM provider settings live in internal/llm; this package
// covers everything else the server needs.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/store"
)

// DefaultAddr is the HTTP listen address when PRAXIS_ADDR is unset.
const DefaultAddr = ":8080"

// App is the full application configuration.
type App struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs session tokens. Required for serve.
	JWTSecret string

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration

	// LLM is the oracle provider configuration.
	LLM llm.Config
}

// FromEnv builds an App from PRAXIS_* environment variables, falling
// back to defaults. The database path resolution mirrors
// store.DefaultDBPath.
func FromEnv() (App, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return App{}, err
	}

	app := App{
		Addr:      DefaultAddr,
		DBPath:    dbPath,
		JWTSecret: os.Getenv("PRAXIS_JWT_SECRET"),
		TokenTTL:  0, // auth package default
		LLM:       llm.ConfigFromEnv(),
	}
	if addr := os.Getenv("PRAXIS_ADDR"); addr != "" {
		app.Addr = addr
	}
	if ttl := os.Getenv("PRAXIS_TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return App{}, errors.New("PRAXIS_TOKEN_TTL: invalid duration " + ttl)
		}
		app.TokenTTL = d
	}

	// When no provider was chosen explicitly and the default lacks a
	// key, fall back to probing the standard *_API_KEY variables.
	if os.Getenv("PRAXIS_LLM_PROVIDER") == "" && app.LLM.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			app.LLM = discovered
		}
	}

	return app, nil
}

// ValidateForServe checks the fields the HTTP server depends on.
func (a App) ValidateForServe() error {
	if a.JWTSecret == "" {
		return errors.New("PRAXIS_JWT_SECRET is required to serve")
	}
	return a.LLM.Validate()
}
