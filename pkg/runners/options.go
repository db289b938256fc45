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

package runners

import "slices"

// OptionKind is the type of value an option holds. It decides which widget
// a configuration UI shows for the option.
type OptionKind string

const (
	KindString OptionKind = "string"
	KindBool   OptionKind = "bool"
	KindPath   OptionKind = "path"
	KindChoice OptionKind = "choice"
)

// Choice is one selectable entry of a KindChoice option.
type Choice struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// Option declares a single configurable field of a runner.
type Option struct {
	Key     string     `json:"key" validate:"required"`
	Kind    OptionKind `json:"kind" validate:"required,oneof=string bool path choice"`
	Label   string     `json:"label" validate:"required"`
	Choices []Choice   `json:"choices,omitempty" validate:"dive"`
}

// CloneOptions returns a deep copy of opts so callers can't modify a
// runner's declared schema.
func CloneOptions(opts []Option) []Option {
	cloned := make([]Option, len(opts))
	for i, opt := range opts {
		opt.Choices = slices.Clone(opt.Choices)
		cloned[i] = opt
	}
	return cloned
}
