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

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	ErrRunnerNotFound  = errors.New("runner not found")
	ErrDuplicateRunner = errors.New("runner already registered")
	ErrInvalidSchema   = errors.New("invalid option schema")
)

// Registry holds the runners available to the launcher, keyed by ID.
type Registry struct {
	runners  map[string]Runner
	validate *validator.Validate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateOptionChoices, Option{})
	return &Registry{
		runners:  make(map[string]Runner),
		validate: v,
	}
}

// validateOptionChoices requires choices on choice options and forbids them
// everywhere else.
func validateOptionChoices(sl validator.StructLevel) {
	opt, ok := sl.Current().Interface().(Option)
	if !ok {
		return
	}
	if opt.Kind == KindChoice && len(opt.Choices) == 0 {
		sl.ReportError(opt.Choices, "Choices", "Choices", "required_choices", "")
	}
	if opt.Kind != KindChoice && len(opt.Choices) > 0 {
		sl.ReportError(opt.Choices, "Choices", "Choices", "no_choices", string(opt.Kind))
	}
}

// Register adds a runner after checking its option schema.
func (r *Registry) Register(runner Runner) error {
	info := runner.Info()
	id := strings.ToLower(info.ID)
	if id == "" {
		return fmt.Errorf("%w: runner has no ID", ErrInvalidSchema)
	}
	if _, ok := r.runners[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRunner, id)
	}

	if err := r.ValidateOptions(runner.GameOptions()); err != nil {
		return fmt.Errorf("%s game options: %w", id, err)
	}
	if err := r.ValidateOptions(runner.RunnerOptions()); err != nil {
		return fmt.Errorf("%s runner options: %w", id, err)
	}

	r.runners[id] = runner
	log.Debug().Str("runner", id).Msg("registered runner")
	return nil
}

// ValidateOptions checks every option is complete and that keys are unique.
func (r *Registry) ValidateOptions(opts []Option) error {
	seen := make(map[string]struct{}, len(opts))
	for _, opt := range opts {
		if err := r.validate.Struct(opt); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				msgs := make([]string, 0, len(validationErrors))
				for _, fe := range validationErrors {
					msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
				}
				return fmt.Errorf("%w: option %q: %s", ErrInvalidSchema, opt.Key, strings.Join(msgs, "; "))
			}
			return fmt.Errorf("validation failed: %w", err)
		}
		if _, ok := seen[opt.Key]; ok {
			return fmt.Errorf("%w: duplicate option key %q", ErrInvalidSchema, opt.Key)
		}
		seen[opt.Key] = struct{}{}
	}
	return nil
}

// Lookup returns the runner with the given ID. IDs are case-insensitive.
func (r *Registry) Lookup(id string) (Runner, error) {
	runner, ok := r.runners[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunnerNotFound, id)
	}
	return runner, nil
}

// All returns every registered runner sorted by ID.
func (r *Registry) All() []Runner {
	ids := make([]string, 0, len(r.runners))
	for id := range r.runners {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	all := make([]Runner, 0, len(ids))
	for _, id := range ids {
		all = append(all, r.runners[id])
	}
	return all
}
