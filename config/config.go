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

package config

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/poiesic/jobscout/analysis"
	"github.com/poiesic/jobscout/ingestion"
	"github.com/poiesic/jobscout/profile"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all jobscout settings.
// Values come from DefaultConfig, then the YAML file, then environment
// variables; later sources win.
type Config struct {
	// DataDir is the directory searched for source files.
	DataDir string `yaml:"data_dir" env:"JOBSCOUT_DATA_DIR" env-description:"directory holding source files"`

	// Keywords filter source file names. Empty matches every file.
	Keywords []string `yaml:"keywords" env:"JOBSCOUT_KEYWORDS" env-description:"comma separated file name keywords"`

	// Extensions are accepted file name suffixes.
	Extensions []string `yaml:"extensions" env:"JOBSCOUT_EXTENSIONS" env-description:"comma separated file extensions"`

	// MatchLogic combines keywords: "and" or "or".
	MatchLogic string `yaml:"match_logic" env:"JOBSCOUT_MATCH_LOGIC" env-description:"keyword match logic (and|or)"`

	// DateColumns are parsed as datetimes when loading CSV files.
	DateColumns []string `yaml:"date_columns" env:"JOBSCOUT_DATE_COLUMNS" env-description:"comma separated date columns"`

	// PoolSize bounds concurrent file loads. Zero uses the loader default.
	PoolSize int `yaml:"pool_size" env:"JOBSCOUT_POOL_SIZE" env-description:"concurrent file loads (0 = auto)"`

	// RedactPII drops identity columns and masks emails after loading.
	RedactPII bool `yaml:"redact_pii" env:"JOBSCOUT_REDACT_PII" env-description:"redact PII after loading"`

	// TextColumns feed the search corpus, in order.
	TextColumns []string `yaml:"text_columns" env:"JOBSCOUT_TEXT_COLUMNS" env-description:"comma separated corpus columns"`

	// ResultColumns are attached to every search result.
	ResultColumns []string `yaml:"result_columns" env:"JOBSCOUT_RESULT_COLUMNS" env-description:"comma separated result columns"`

	// TopN is the default number of search results.
	TopN int `yaml:"top_n" env:"JOBSCOUT_TOP_N" env-description:"default number of search results"`

	Inference   InferenceConfig   `yaml:"inference"`
	Correlation CorrelationConfig `yaml:"correlation"`
}

// InferenceConfig holds the column type inference cutoffs.
type InferenceConfig struct {
	CategoricalRatioMax     float64 `yaml:"categorical_ratio_max" env:"JOBSCOUT_CATEGORICAL_RATIO_MAX" env-description:"max distinct ratio for categorical columns"`
	CategoricalCountMax     int     `yaml:"categorical_count_max" env:"JOBSCOUT_CATEGORICAL_COUNT_MAX" env-description:"max distinct values for numeric categorical columns"`
	TextCategoricalCountMax int     `yaml:"text_categorical_count_max" env:"JOBSCOUT_TEXT_CATEGORICAL_COUNT_MAX" env-description:"max distinct values for text categorical columns"`
}

// Thresholds converts the settings for the profiler.
func (c InferenceConfig) Thresholds() profile.Thresholds {
	return profile.Thresholds{
		CategoricalRatioMax:     c.CategoricalRatioMax,
		CategoricalCountMax:     c.CategoricalCountMax,
		TextCategoricalCountMax: c.TextCategoricalCountMax,
	}
}

// CorrelationConfig controls the correlate command.
type CorrelationConfig struct {
	// Exclude lists numeric columns never correlated.
	Exclude []string `yaml:"exclude" env:"JOBSCOUT_CORRELATION_EXCLUDE" env-description:"comma separated columns to skip"`

	// Output is the path the correlation heat map is written to. A .csv
	// extension writes the raw matrix instead.
	Output string `yaml:"output" env:"JOBSCOUT_CORRELATION_OUTPUT" env-description:"correlation matrix output path"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDataDir sets the source directory.
func WithDataDir(dir string) ConfigOption {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithKeywords sets the file name keywords.
func WithKeywords(keywords ...string) ConfigOption {
	return func(c *Config) {
		c.Keywords = keywords
	}
}

// WithMatchLogic sets how keywords combine.
func WithMatchLogic(logic string) ConfigOption {
	return func(c *Config) {
		c.MatchLogic = logic
	}
}

// WithPoolSize sets the number of concurrent file loads.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithRedactPII toggles redaction after loading.
func WithRedactPII(redact bool) ConfigOption {
	return func(c *Config) {
		c.RedactPII = redact
	}
}

// WithTextColumns sets the corpus columns.
func WithTextColumns(columns ...string) ConfigOption {
	return func(c *Config) {
		c.TextColumns = columns
	}
}

// WithResultColumns sets the columns attached to search results.
func WithResultColumns(columns ...string) ConfigOption {
	return func(c *Config) {
		c.ResultColumns = columns
	}
}

// WithTopN sets the default number of search results.
func WithTopN(n int) ConfigOption {
	return func(c *Config) {
		c.TopN = n
	}
}

// DefaultConfig returns a Config with the stock settings.
func DefaultConfig() *Config {
	th := profile.DefaultThresholds()
	return &Config{
		DataDir:       "./data",
		Extensions:    slices.Clone(ingestion.DefaultExtensions),
		MatchLogic:    ingestion.MatchAll.String(),
		DateColumns:   []string{"date_posted"},
		RedactPII:     true,
		TextColumns:   []string{"description", "programming_languages", "additional_benefits"},
		ResultColumns: []string{"title", "company", "location"},
		TopN:          10,
		Inference: InferenceConfig{
			CategoricalRatioMax:     th.CategoricalRatioMax,
			CategoricalCountMax:     th.CategoricalCountMax,
			TextCategoricalCountMax: th.TextCategoricalCountMax,
		},
		Correlation: CorrelationConfig{
			Exclude: slices.Clone(analysis.DefaultExclude),
			Output:  "correlations.png",
		},
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load builds a Config from the defaults, the YAML file at path and the
// environment, then applies opts and validates the result. An empty path
// skips the file.
func Load(path string, opts ...ConfigOption) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if _, err := ingestion.ParseMatchLogic(c.MatchLogic); err != nil {
		errs = append(errs, err)
	}
	if c.PoolSize < 0 {
		errs = append(errs, fmt.Errorf("pool_size %d < 0", c.PoolSize))
	}
	if len(c.TextColumns) == 0 {
		errs = append(errs, errors.New("text_columns must not be empty"))
	}
	if c.TopN < 1 {
		errs = append(errs, fmt.Errorf("top_n %d < 1", c.TopN))
	}
	if err := c.Inference.Thresholds().Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// EnvHelp describes the environment variables Load honors.
func EnvHelp() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}
