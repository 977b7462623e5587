// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package client implements the command-line client application runtime.
//
// It wires the statistics engine, local cache, and background refresh worker
// into a single process lifecycle and dispatches the user-facing
// subcommands.
package client
