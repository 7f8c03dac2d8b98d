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

import "errors"

// Domain errors
var (
	// ErrUnknownColumn indicates a caller referenced a column the table does not have.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidTable indicates a table could not be constructed or indexed.
	ErrInvalidTable = errors.New("invalid table")

	// ErrEmptyColumnName indicates a column was given an empty name.
	ErrEmptyColumnName = errors.New("column name cannot be empty")
)
