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

// Package search ranks table rows against free-text queries.
//
// Ranking works in two steps:
//   - BuildCorpus synthesizes one search-ready string per row from selected columns
//   - Ranker fits a TF-IDF model on that corpus and scores every row by cosine
//     similarity to the query
//
// Fit exposes the fitted Model separately for callers that query the same
// corpus repeatedly.
package search
