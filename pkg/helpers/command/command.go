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

// Package command provides an abstraction over exec.Command so runners can be
// tested against canned process output.
package command

import (
	"bytes"
	"context"
	"os/exec"
)

// Executor runs external executables on behalf of a runner.
type Executor interface {
	// Output runs a command, waits for it to exit and returns everything it
	// wrote to stdout. If the process exits with a non-zero status the
	// captured output is still returned, alongside an *exec.ExitError.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start starts a command without waiting for it to complete.
	Start(ctx context.Context, name string, args ...string) error
}

// RealExecutor uses exec.CommandContext to run real processes.
type RealExecutor struct{}

// Compile-time interface implementation check.
var _ Executor = (*RealExecutor)(nil)

// Output runs a command and returns its standard output.
//
//nolint:wrapcheck // Callers inspect *exec.ExitError directly
func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	err := cmd.Run()
	return stdout.Bytes(), err
}

// Start starts a command without waiting for it to complete. The process
// outlives ctx, so a launched game isn't killed when the caller exits.
//
//nolint:wrapcheck // Wrapping exec errors loses important context
func (*RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(context.WithoutCancel(ctx), name, args...).Start()
}
