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

package builtin

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/mednafen"
	"github.com/ZaparooProject/zaparoo-runners/pkg/runners/residualvm"
	"github.com/ZaparooProject/zaparoo-runners/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(helpers.NewMockCommandExecutor())
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, mednafen.ID, all[0].Info().ID)
	assert.Equal(t, residualvm.ID, all[1].Info().ID)

	_, ok := all[1].(*residualvm.Runner)
	assert.True(t, ok)
}
