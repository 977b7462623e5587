// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the memstats
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the remote stats service address and request timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds local persistence settings: the SQLite database file
	// and the client identity file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds tunables of the synchronization engine: retry budget,
	// backoff base, timeout growth, probe TTL, and refresh limit.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the remote stats service.
type Server struct {
	// BaseURL is the root URL of the stats service (e.g.
	// "http://localhost:5000"). Probed with GET / for liveness.
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the timeout of a single save request. The write
	// path grows it per retry attempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds the connectivity probe and the read-path fetches.
	// Env: SERVER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// ClientIDFile is the path of the dotfile holding the stable
	// per-installation client identifier.
	// Env: STORAGE_CLIENT_ID_FILE
	ClientIDFile string `env:"CLIENT_ID_FILE"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (created on first run).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the synchronization engine tunables. Zero values fall back to
// the defaults applied by [applyDefaults].
type Sync struct {
	// RetryAttempts bounds the write-path push retry loop.
	// Env: SYNC_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is the base of the exponential backoff schedule.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// TimeoutStep is added to the save timeout on every retry attempt.
	// Env: SYNC_TIMEOUT_STEP
	TimeoutStep time.Duration `env:"TIMEOUT_STEP"`

	// ProbeTTL is how long a successful connectivity probe stays valid.
	// Zero keeps the conservative behavior of re-probing on every read.
	// Env: SYNC_PROBE_TTL
	ProbeTTL time.Duration `env:"PROBE_TTL"`

	// RefreshLimit is how many leaderboard rows per difficulty a full
	// refresh fetches.
	// Env: SYNC_REFRESH_LIMIT
	RefreshLimit int `env:"REFRESH_LIMIT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the background worker re-runs the full
	// leaderboard refresh.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied when a field is left unset by every source.
const (
	DefaultBaseURL         = "http://localhost:5000"
	DefaultDBFile          = "memstats.db"
	DefaultClientIDFile    = ".client_id"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultProbeTimeout    = 5 * time.Second
	DefaultRetryAttempts   = 5
	DefaultRetryBaseDelay  = time.Second
	DefaultTimeoutStep     = 5 * time.Second
	DefaultRefreshLimit    = 100
	DefaultRefreshInterval = 5 * time.Minute
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ProbeTimeout == 0 {
		cfg.Server.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDBFile
	}
	if cfg.Storage.ClientIDFile == "" {
		cfg.Storage.ClientIDFile = DefaultClientIDFile
	}
	if cfg.Sync.RetryAttempts == 0 {
		cfg.Sync.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.Sync.RetryBaseDelay == 0 {
		cfg.Sync.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.Sync.TimeoutStep == 0 {
		cfg.Sync.TimeoutStep = DefaultTimeoutStep
	}
	if cfg.Sync.RefreshLimit == 0 {
		cfg.Sync.RefreshLimit = DefaultRefreshLimit
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields left unset by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}
