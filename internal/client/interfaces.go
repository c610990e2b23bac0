// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the terminal front end driven by [App].
type UI interface {
	// Banner prints the application banner.
	Banner()
	// Login authenticates the operator once.
	Login(ctx context.Context) error
	// MainLoop runs the menu until the operator quits.
	MainLoop(ctx context.Context) error
	// Goodbye prints the farewell line.
	Goodbye()
}
