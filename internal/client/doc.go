// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vaultctl command-line runtime.
//
// It dispatches subcommands to the vault services, reads passwords without
// echo and keeps stdout machine-readable: results go to stdout, diagnostics
// to stderr.
package client
