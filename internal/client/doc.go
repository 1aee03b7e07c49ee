// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session, hands control to the terminal UI and maps
// a user quit to a clean exit.
package client
