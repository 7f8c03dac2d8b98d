// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"errors"
	"fmt"
)

// ValidateColumns checks that every name refers to a column of t.
//
// Validation rules:
//   - t must not be nil
//   - names must not be empty strings
//   - every name must exist in t
//
// All violations are reported together.
func ValidateColumns(t *Table, names ...string) error {
	if t == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}

	var errs []error
	for _, name := range names {
		if name == "" {
			errs = append(errs, ErrEmptyColumnName)
			continue
		}
		if !t.HasColumn(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownColumn, name))
		}
	}
	return errors.Join(errs...)
}

// SplitColumns partitions names into those present in t and those missing,
// preserving order.
func SplitColumns(t *Table, names ...string) (present, missing []string) {
	for _, name := range names {
		if t != nil && t.HasColumn(name) {
			present = append(present, name)
		} else {
			missing = append(missing, name)
		}
	}
	return present, missing
}
