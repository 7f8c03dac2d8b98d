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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/jobscout"
	"github.com/poiesic/jobscout/analysis"
	"github.com/poiesic/jobscout/config"
	"github.com/poiesic/jobscout/core"
	"github.com/poiesic/jobscout/profile"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "jobscout",
		Usage: "Profile, merge and search scraped job-listing CSV files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding source files (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:    "keyword",
				Aliases: []string{"k"},
				Usage:   "File name keyword, repeatable (overrides config)",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "Keyword match logic: and, or (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-redact",
				Usage: "Keep PII columns and email addresses",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "files",
				Usage:  "List source files matching the keywords",
				Action: filesCommand,
			},
			{
				Name:   "summarize",
				Usage:  "Merge sources and summarize inferred column types",
				Action: summarizeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-per-line",
						Usage: "Column names per line in the type groups listing",
						Value: profile.DefaultMaxPerLine,
					},
					&cli.BoolFlag{
						Name:  "fingerprint",
						Usage: "Print a digest of the summary table",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank job postings against a free-text query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-n",
						Aliases: []string{"n"},
						Usage:   "Number of results (defaults to config top_n)",
					},
					&cli.StringSliceFlag{
						Name:  "text-column",
						Usage: "Column feeding the search text, repeatable (overrides config)",
					},
					&cli.StringSliceFlag{
						Name:  "result-column",
						Usage: "Column shown with each result, repeatable (overrides config)",
					},
				},
			},
			{
				Name:   "correlate",
				Usage:  "Render the correlation matrix of numeric columns as a heat map or CSV",
				Action: correlateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path, .csv for the raw matrix, - for CSV on stdout (defaults to config correlation.output)",
					},
				},
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration",
				Action: configCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "env",
						Usage: "List the environment variables instead",
					},
				},
			},
		},
	}
}

// loadConfig reads the configuration file and applies command line overrides.
func loadConfig(c *cli.Context, extra ...config.ConfigOption) (*config.Config, error) {
	var opts []config.ConfigOption
	if c.IsSet("data-dir") {
		opts = append(opts, config.WithDataDir(c.String("data-dir")))
	}
	if c.IsSet("keyword") {
		opts = append(opts, config.WithKeywords(c.StringSlice("keyword")...))
	}
	if c.IsSet("match") {
		opts = append(opts, config.WithMatchLogic(c.String("match")))
	}
	if c.Bool("no-redact") {
		opts = append(opts, config.WithRedactPII(false))
	}
	opts = append(opts, extra...)

	cfg, err := config.Load(c.String("config"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openExplorer(c *cli.Context, extra ...config.ConfigOption) (*jobscout.Explorer, error) {
	cfg, err := loadConfig(c, extra...)
	if err != nil {
		return nil, err
	}
	return jobscout.NewExplorer(cfg, jobscout.WithSearchMonitor(&logMonitor{logger: slog.Default()}))
}

func loadTable(explorer *jobscout.Explorer) (*core.Table, error) {
	table, err := explorer.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}
	if table.IsEmpty() {
		return nil, fmt.Errorf("no data loaded from %s", explorer.Config().DataDir)
	}
	return table, nil
}

func filesCommand(c *cli.Context) error {
	explorer, err := openExplorer(c)
	if err != nil {
		return err
	}
	defer explorer.Close()

	files, err := explorer.Discover()
	if err != nil {
		return err
	}
	for _, name := range files {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func summarizeCommand(c *cli.Context) error {
	explorer, err := openExplorer(c)
	if err != nil {
		return err
	}
	defer explorer.Close()

	table, err := loadTable(explorer)
	if err != nil {
		return err
	}
	report, err := explorer.Summarize(table)
	if err != nil {
		return err
	}

	w := c.App.Writer
	if err := profile.RenderSummary(w, report.Summaries); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := profile.RenderGroups(w, report.Groups, c.Int("max-per-line")); err != nil {
		return err
	}
	if c.Bool("fingerprint") {
		fmt.Fprintf(w, "\nfingerprint: %016x\n", uint64(profile.Fingerprint(report.Summaries)))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	var extra []config.ConfigOption
	if c.IsSet("text-column") {
		extra = append(extra, config.WithTextColumns(c.StringSlice("text-column")...))
	}
	if c.IsSet("result-column") {
		extra = append(extra, config.WithResultColumns(c.StringSlice("result-column")...))
	}
	explorer, err := openExplorer(c, extra...)
	if err != nil {
		return err
	}
	defer explorer.Close()

	table, err := loadTable(explorer)
	if err != nil {
		return err
	}

	topN := explorer.Config().TopN
	if c.IsSet("top-n") {
		topN = c.Int("top-n")
	}
	results, err := explorer.Search(table, query, topN)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Found %d hits\n", results.Len())
	for i, hit := range results.Results {
		fields := make([]string, 0, len(results.Columns))
		for _, name := range results.Columns {
			fields = append(fields, name+"="+core.FormatValue(hit.Attributes[name]))
		}
		fmt.Fprintf(w, "%d: row %d [%0.3f] %s\n", i, hit.Index, hit.Score, strings.Join(fields, " "))
	}
	return nil
}

func correlateCommand(c *cli.Context) error {
	explorer, err := openExplorer(c)
	if err != nil {
		return err
	}
	defer explorer.Close()

	table, err := loadTable(explorer)
	if err != nil {
		return err
	}
	matrix, err := explorer.Correlate(table)
	if err != nil {
		return err
	}

	output := explorer.Config().Correlation.Output
	if c.IsSet("output") {
		output = c.String("output")
	}
	if output == "-" {
		return matrix.WriteCSV(c.App.Writer)
	}

	if strings.EqualFold(filepath.Ext(output), ".csv") {
		err = writeMatrixCSV(matrix, output)
	} else {
		err = matrix.SaveHeatMap(output)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(c.App.Writer, "wrote %dx%d correlation matrix to %s\n", len(matrix.Columns), len(matrix.Columns), output)
	return nil
}

func writeMatrixCSV(matrix *analysis.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := matrix.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func configCommand(c *cli.Context) error {
	if c.Bool("env") {
		help, err := config.EnvHelp()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, help)
		return nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return cfg.Write(c.App.Writer)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
