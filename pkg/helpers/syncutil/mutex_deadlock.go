//go:build deadlock

// Zaparoo Runners
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Runners.
//
// Zaparoo Runners is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Runners is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Runners.  If not, see <http://www.gnu.org/licenses/>.

// Package syncutil wraps the sync locks so deadlock detection can be switched
// on for development builds with -tags=deadlock.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether locks are checked for deadlocks.
const DeadlockEnabled = true

func init() {
	// config is only held across file IO
	deadlock.Opts.DeadlockTimeout = 10 * time.Second
}

// RWMutex is a reader/writer lock reporting lock waits longer than the
// deadlock timeout.
type RWMutex struct {
	deadlock.RWMutex
}
