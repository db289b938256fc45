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
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Values maps option keys to their resolved values.
type Values map[string]any

// Decode copies values into the struct pointed to by dest, matching fields by
// their "option" tag. Missing keys leave the field untouched and keys with no
// matching field are ignored.
//
// Decoding into string and bool fields never fails: any scalar is formatted
// into a string field and anything that isn't clearly true reads as false.
func (v Values) Decode(dest any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		TagName:          "option",
		WeaklyTypedInput: true,
		DecodeHook:       lenientScalarHook,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(v)); err != nil {
		return fmt.Errorf("failed to decode options: %w", err)
	}
	return nil
}

func lenientScalarHook(_, to reflect.Type, data any) (any, error) {
	switch to.Kind() { //nolint:exhaustive // only scalars are coerced
	case reflect.Bool:
		return IsTruthy(data), nil
	case reflect.String:
		if s, ok := data.(string); ok {
			return s, nil
		}
		return fmt.Sprint(data), nil
	default:
		return data, nil
	}
}

// IsTruthy reports whether an option value should be treated as enabled.
func IsTruthy(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
	case nil:
		return false
	}

	rv := reflect.ValueOf(val)
	switch {
	case rv.CanInt():
		return rv.Int() != 0
	case rv.CanUint():
		return rv.Uint() != 0
	case rv.CanFloat():
		return rv.Float() != 0
	}
	return false
}
