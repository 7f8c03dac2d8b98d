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

// Package profile infers semantic column types and summarizes tables.
//
// Type inference applies an ordered cascade of heuristics to a column:
//   - native datetime and boolean storage map directly
//   - numeric storage is numeric unless it has very few distinct values
//   - text storage is probed for numbers, boolean spellings and low cardinality
//
// The Summarizer runs inference over every column of a table, orders the
// summaries by a fixed type priority and groups column names by type.
package profile
