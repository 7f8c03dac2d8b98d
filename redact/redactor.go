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

package redact

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/jobscout/core"
)

// DefaultColumnPatterns match column names likely to hold identity data.
var DefaultColumnPatterns = []string{
	"email", "phone", "linkedin", "profile", "recruiter", "hiring_manager",
	"contact", "poster", `name.*id`, `user.*id`, "applicant", "scraper",
}

// EmailMarker replaces every email address found in text columns.
const EmailMarker = "[EMAIL REDACTED]"

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// Result is the outcome of anonymizing a table.
type Result struct {
	Table    *core.Table
	Dropped  []string // removed columns, in table order
	Redacted []string // text columns in which emails were replaced
}

// Redactor drops identity columns and masks email addresses.
type Redactor struct {
	columns *regexp.Regexp
	marker  string
	logger  *slog.Logger
}

// Option configures a Redactor.
type Option func(*Redactor) error

// WithColumnPatterns replaces DefaultColumnPatterns. Patterns are regular
// expressions matched case-insensitively anywhere in a column name.
func WithColumnPatterns(patterns ...string) Option {
	return func(r *Redactor) error {
		re, err := compileColumnPatterns(patterns)
		if err != nil {
			return err
		}
		r.columns = re
		return nil
	}
}

// WithMarker sets the text substituted for email addresses.
// Default is EmailMarker.
func WithMarker(marker string) Option {
	return func(r *Redactor) error {
		r.marker = marker
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Redactor) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRedactor creates a redactor using DefaultColumnPatterns.
func NewRedactor(opts ...Option) (*Redactor, error) {
	columns, err := compileColumnPatterns(DefaultColumnPatterns)
	if err != nil {
		return nil, err
	}

	r := &Redactor{
		columns: columns,
		marker:  EmailMarker,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func compileColumnPatterns(patterns []string) (*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns", ErrInvalidPattern)
	}
	re, err := regexp.Compile("(?i)" + strings.Join(patterns, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}

// Anonymize returns a copy of t without identity columns and with email
// addresses masked in the remaining text columns. Non-string values in text
// columns are kept as they are. t is not modified.
func (r *Redactor) Anonymize(t *core.Table) (*Result, error) {
	if t == nil {
		return nil, ErrTableRequired
	}

	result := &Result{}
	for _, name := range t.ColumnNames() {
		if r.columns.MatchString(name) {
			result.Dropped = append(result.Dropped, name)
		}
	}
	if len(result.Dropped) > 0 {
		r.logger.Info("dropping potential PII columns", "columns", result.Dropped)
	} else {
		r.logger.Info("no potential PII columns detected")
	}

	out := t.WithoutColumns(result.Dropped...)
	for _, col := range out.Columns() {
		if col.Kind != core.KindObject || !containsEmail(col) {
			continue
		}
		r.logger.Info("redacting emails", "column", col.Name)
		masked := make([]any, col.Len())
		for i, v := range col.Values {
			if s, ok := v.(string); ok {
				masked[i] = emailPattern.ReplaceAllString(s, r.marker)
				continue
			}
			masked[i] = v
		}

		var err error
		out, err = out.WithColumn(core.NewColumnOfKind(col.Name, col.Kind, masked))
		if err != nil {
			return nil, err
		}
		result.Redacted = append(result.Redacted, col.Name)
	}

	result.Table = out
	return result, nil
}

func containsEmail(col *core.Column) bool {
	for _, v := range col.Values {
		if s, ok := v.(string); ok && emailPattern.MatchString(s) {
			return true
		}
	}
	return false
}

// AnonymizePII anonymizes t with the default patterns and marker.
func AnonymizePII(t *core.Table) (*Result, error) {
	r, err := NewRedactor()
	if err != nil {
		return nil, err
	}
	return r.Anonymize(t)
}
