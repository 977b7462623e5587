// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package identity manages the stable per-installation client identifier.
//
// The remote stats service scopes duplicate detection by client id, so the
// id must survive restarts: it is generated once and persisted to a dotfile
// next to the local database.
package identity

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// LoadOrCreateClientID returns the client identifier stored in path,
// creating the file with a fresh UUID on first run. A file holding only
// whitespace is treated as missing and regenerated.
func LoadOrCreateClientID(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error reading client id file: %w", err)
	}

	id := newClientID()
	if err := os.WriteFile(path, []byte(id), 0644); err != nil {
		return "", fmt.Errorf("error writing client id file: %w", err)
	}

	return id, nil
}

func newClientID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
