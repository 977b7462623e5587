// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateClientID_CreatesOnFirstRun(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".client_id")

	id, err := LoadOrCreateClientID(p)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, id, string(raw))
}

func TestLoadOrCreateClientID_StableAcrossCalls(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".client_id")

	first, err := LoadOrCreateClientID(p)
	require.NoError(t, err)

	second, err := LoadOrCreateClientID(p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadOrCreateClientID_TrimsWhitespace(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".client_id")
	require.NoError(t, os.WriteFile(p, []byte("  abc-123\n"), 0644))

	id, err := LoadOrCreateClientID(p)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestLoadOrCreateClientID_BlankFileRegenerated(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".client_id")
	require.NoError(t, os.WriteFile(p, []byte("  \n"), 0644))

	id, err := LoadOrCreateClientID(p)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
