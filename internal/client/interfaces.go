// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0].
	Run(ctx context.Context, args []string) error
}

// PasswordReader obtains a secret from the user. name identifies which
// secret is asked for ("password", "new password").
type PasswordReader interface {
	ReadPassword(name string) (string, error)
}

// Clipboard receives generated passwords.
type Clipboard interface {
	WriteAll(text string) error
}
