package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/jobscout/ingestion"
	"github.com/poiesic/jobscout/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, []string{".csv"}, cfg.Extensions)
	assert.Equal(t, "and", cfg.MatchLogic)
	assert.True(t, cfg.RedactPII)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, profile.DefaultThresholds(), cfg.Inference.Thresholds())
	assert.Contains(t, cfg.Correlation.Exclude, "job_id")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithDataDir("/srv/jobs"),
		WithKeywords("job", "remote"),
		WithMatchLogic("or"),
		WithPoolSize(3),
		WithRedactPII(false),
		WithTextColumns("title"),
		WithResultColumns("company"),
		WithTopN(4),
	)

	assert.Equal(t, "/srv/jobs", cfg.DataDir)
	assert.Equal(t, []string{"job", "remote"}, cfg.Keywords)
	assert.Equal(t, "or", cfg.MatchLogic)
	assert.Equal(t, 3, cfg.PoolSize)
	assert.False(t, cfg.RedactPII)
	assert.Equal(t, []string{"title"}, cfg.TextColumns)
	assert.Equal(t, []string{"company"}, cfg.ResultColumns)
	assert.Equal(t, 4, cfg.TopN)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
data_dir: /data/scrapes
keywords: [jobs, linkedin]
redact_pii: false
top_n: 3
inference:
  categorical_count_max: 25
correlation:
  output: out/corr.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/scrapes", cfg.DataDir)
	assert.Equal(t, []string{"jobs", "linkedin"}, cfg.Keywords)
	assert.False(t, cfg.RedactPII)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 25, cfg.Inference.CategoricalCountMax)
	assert.Equal(t, 0.05, cfg.Inference.CategoricalRatioMax, "unset fields keep defaults")
	assert.Equal(t, "out/corr.csv", cfg.Correlation.Output)
	assert.Equal(t, []string{"description", "programming_languages", "additional_benefits"}, cfg.TextColumns)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "data_dir: /from/yaml\ntop_n: 3\n")

	t.Setenv("JOBSCOUT_DATA_DIR", "/from/env")
	t.Setenv("JOBSCOUT_KEYWORDS", "jobs,remote")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
	assert.Equal(t, []string{"jobs", "remote"}, cfg.Keywords)
	assert.Equal(t, 3, cfg.TopN)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JOBSCOUT_TOP_N", "7")

	cfg, err := Load("", WithMatchLogic("or"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, "or", cfg.MatchLogic)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "match_logic: xor\ntop_n: 0\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, ingestion.ErrInvalidMatchLogic)
	})
}

func TestValidate(t *testing.T) {
	cfg := NewConfig(WithDataDir(""), WithTextColumns(), WithPoolSize(-1))
	cfg.Inference.CategoricalRatioMax = 2

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, profile.ErrInvalidThresholds)
	assert.Contains(t, err.Error(), "data_dir")
	assert.Contains(t, err.Error(), "text_columns")
	assert.Contains(t, err.Error(), "pool_size")
}

func TestWrite_RoundTrip(t *testing.T) {
	cfg := NewConfig(WithKeywords("jobs"), WithTopN(5))

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))
	assert.Contains(t, buf.String(), "top_n: 5")
	assert.Contains(t, buf.String(), "categorical_ratio_max: 0.05")

	path := writeConfig(t, buf.String())
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvHelp(t *testing.T) {
	help, err := EnvHelp()
	require.NoError(t, err)
	assert.Contains(t, help, "JOBSCOUT_DATA_DIR")
	assert.Contains(t, help, "JOBSCOUT_TOP_N")
}
