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

// Package builtin registers the runners shipped with Zaparoo Runners.
package builtin

import (
	"fmt"

	"github.com/ZaparooProject/zaparoo-runners/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/mednafen"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/residualvm"
)

// NewRegistry returns a registry holding every built-in runner. External
// processes are run through cmd.
func NewRegistry(cmd command.Executor) (*runners.Registry, error) {
	reg := runners.NewRegistry()
	for _, r := range []runners.Runner{
		residualvm.NewRunner(cmd),
		mednafen.NewRunner(cmd),
	} {
		if err := reg.Register(r); err != nil {
			return nil, fmt.Errorf("failed to register runner: %w", err)
		}
	}
	return reg, nil
}
