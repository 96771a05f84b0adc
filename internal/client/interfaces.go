// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/nudge/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in or picks guest mode and
	// reports whether guest mode was chosen.
	LoginFlow(ctx context.Context) (guest bool, err error)

	// MainLoop shows the items of source until the user quits. It reports
	// whether the user asked to sign out.
	MainLoop(ctx context.Context, source service.ItemSource, guest bool) (logout bool, err error)
}
