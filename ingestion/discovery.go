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

package ingestion

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// MatchLogic decides how keywords combine when matching file names.
type MatchLogic int

const (
	// MatchAll requires every keyword to appear in the name.
	MatchAll MatchLogic = iota
	// MatchAny requires at least one keyword to appear in the name.
	MatchAny
)

// String returns "and" or "or".
func (m MatchLogic) String() string {
	if m == MatchAny {
		return "or"
	}
	return "and"
}

// ParseMatchLogic accepts "and" or "or", case-insensitively.
func ParseMatchLogic(s string) (MatchLogic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and", "":
		return MatchAll, nil
	case "or":
		return MatchAny, nil
	default:
		return MatchAll, fmt.Errorf("%w: %q", ErrInvalidMatchLogic, s)
	}
}

// DefaultExtensions is used when Criteria.Extensions is empty.
var DefaultExtensions = []string{".csv"}

// Criteria selects files by name. Matching is case-insensitive.
type Criteria struct {
	Keywords   []string
	Extensions []string
	Logic      MatchLogic
}

// Match reports whether name satisfies the criteria.
func (c Criteria) Match(name string) bool {
	lower := strings.ToLower(name)

	extensions := c.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	hasExt := false
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			hasExt = true
			break
		}
	}
	if !hasExt {
		return false
	}

	if len(c.Keywords) == 0 {
		return true
	}
	for _, kw := range c.Keywords {
		found := strings.Contains(lower, strings.ToLower(kw))
		if c.Logic == MatchAny && found {
			return true
		}
		if c.Logic == MatchAll && !found {
			return false
		}
	}
	return c.Logic == MatchAll
}

// FindFiles lists the regular files in dir whose names satisfy criteria, in
// lexical order. A missing directory, a path that is not a directory or no
// matches yields an empty list and a log message rather than an error.
func FindFiles(logger *slog.Logger, dir string, criteria Criteria) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("folder does not exist", "dir", dir)
			return []string{}, nil
		}
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			logger.Warn("path is not a folder", "dir", dir)
			return []string{}, nil
		}
		return nil, err
	}

	matches := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if criteria.Match(entry.Name()) {
			matches = append(matches, entry.Name())
		}
	}

	if len(matches) == 0 {
		logger.Info("no files found matching criteria", "dir", dir, "keywords", criteria.Keywords, "logic", criteria.Logic.String())
	} else {
		logger.Info("found matching files", "dir", dir, "count", len(matches))
	}
	return matches, nil
}
