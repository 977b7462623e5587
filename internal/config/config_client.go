// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the remote client transport.
type ClientAdapter struct {
	// BaseURL is the stats service root URL.
	BaseURL string
	// RequestTimeout is the timeout of a single save request.
	RequestTimeout time.Duration
	// ProbeTimeout bounds the connectivity probe and read-path fetches.
	ProbeTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// ClientIDFile is the path of the client identity dotfile.
	ClientIDFile string
}

// ClientSync holds the sync engine tunables.
type ClientSync struct {
	// RetryAttempts bounds the write-path push retry loop.
	RetryAttempts int
	// RetryBaseDelay is the exponential backoff base.
	RetryBaseDelay time.Duration
	// TimeoutStep grows the save timeout per retry attempt.
	TimeoutStep time.Duration
	// ProbeTTL is how long a successful probe stays valid (zero = re-probe
	// on every read).
	ProbeTTL time.Duration
	// RefreshLimit is the per-difficulty row budget of a full refresh.
	RefreshLimit int
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains remote transport settings.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Sync contains sync engine tunables.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Server.BaseURL,
			RequestTimeout: cfg.Server.RequestTimeout,
			ProbeTimeout:   cfg.Server.ProbeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			ClientIDFile: cfg.Storage.ClientIDFile,
		},
		Sync: ClientSync{
			RetryAttempts:  cfg.Sync.RetryAttempts,
			RetryBaseDelay: cfg.Sync.RetryBaseDelay,
			TimeoutStep:    cfg.Sync.TimeoutStep,
			ProbeTTL:       cfg.Sync.ProbeTTL,
			RefreshLimit:   cfg.Sync.RefreshLimit,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
