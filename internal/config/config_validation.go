// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 || cfg.Adapter.ProbeTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.Adapter.BaseURL, "http://") && !strings.HasPrefix(cfg.Adapter.BaseURL, "https://") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.RetryAttempts < 1 || cfg.Sync.RetryBaseDelay <= 0 || cfg.Sync.ProbeTTL < 0 || cfg.Sync.RefreshLimit < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
