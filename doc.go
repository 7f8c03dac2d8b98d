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

// Package jobscout explores scraped job-listing datasets.
//
// An Explorer finds CSV sources by file name, merges them into one table
// tagged with each row's source, infers the semantic type of every column,
// ranks rows against free-text queries with TF-IDF and correlates the
// numeric columns.
package jobscout
