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

package search

import "errors"

var (
	// ErrInvalidLimit is returned when the requested result count is below 1.
	ErrInvalidLimit = errors.New("result limit must be at least 1")

	// ErrCorpusMismatch is returned when a corpus does not have one entry per table row.
	ErrCorpusMismatch = errors.New("corpus length does not match table rows")

	// ErrTableRequired is returned when a nil table is ranked.
	ErrTableRequired = errors.New("table required")
)
