// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the client application with the given command-line
	// arguments and blocks until the requested command finishes.
	Run(ctx context.Context, args []string) error
}
