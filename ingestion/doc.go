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

// Package ingestion acquires tabular sources and merges them into one table.
//
// Sources are file references loaded from CSV, labeled tables, or raw
// tables. The Merger loads file sources on a worker pool, tags every row with
// its source label and concatenates the results with column-union semantics.
// A source that cannot be acquired is logged and skipped; it never fails the
// merge.
package ingestion
