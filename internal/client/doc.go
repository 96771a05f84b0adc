// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It picks where items live for the session (the server for a signed-in
// user, the device for a guest) and runs the terminal UI over that source
// until the user quits.
package client
