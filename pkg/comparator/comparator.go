// Package comparator drives one comparison run: it gates and loads the
// proposed config, then scores it against every readable file in the
// history directory.
package comparator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/emt/driftwatch/pkg/canonical"
	"github.com/emt/driftwatch/pkg/differ"
	"github.com/emt/driftwatch/pkg/linter"
	"github.com/emt/driftwatch/pkg/parser"
)

// Options configures a Comparator. Sensitivity is inversely related to
// the alert threshold: higher sensitivity, stricter alerting.
type Options struct {
	HistoryDir    string        `validate:"required,dir"`
	NewConfigPath string        `validate:"required,file"`
	Format        parser.Format `validate:"required,oneof=yaml json"`
	Sensitivity   float64       `validate:"min=0,max=1"`
	// Concurrency bounds how many history files are compared in
	// parallel. Alert ordering stays sorted by filename either way.
	Concurrency int `validate:"min=1"`
}

// Comparator compares a proposed config against a directory of
// historical snapshots. The syntax validator and logger are injected;
// one Comparator serves one run.
type Comparator struct {
	opts      Options
	validator linter.Validator
	logger    zerolog.Logger
}

// New validates opts and builds a Comparator. A nil validator defaults
// to the external lint tools for the configured format.
func New(opts Options, v linter.Validator, logger zerolog.Logger) (*Comparator, error) {
	if opts.Concurrency == 0 {
		opts.Concurrency = 1
	}
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid comparator options: %w", err)
	}
	if v == nil {
		v = linter.NewExecValidator(opts.Format)
	}
	return &Comparator{opts: opts, validator: v, logger: logger}, nil
}

// Compare runs the full comparison. Failures on the new config abort
// with a sentinel result; failures on individual history files are
// logged and skipped. The returned error is reserved for infrastructure
// problems (missing validator tool, unreadable history directory).
func (c *Comparator) Compare(ctx context.Context) (*Result, error) {
	log := c.logger.With().Str("new_config", c.opts.NewConfigPath).Logger()

	if err := c.validator.Validate(ctx, c.opts.NewConfigPath); err != nil {
		var syntaxErr *linter.SyntaxError
		if errors.As(err, &syntaxErr) {
			log.Error().Str("diagnostic", syntaxErr.Diagnostic).
				Msg("syntax validation failed for new configuration, aborting comparison")
			return &Result{
				Outcome: OutcomeSyntaxInvalid,
				Alerts: []Alert{{
					File:    c.opts.NewConfigPath,
					Summary: "Syntax validation failed for the new configuration. Please correct the syntax errors.",
				}},
			}, nil
		}
		return nil, fmt.Errorf("validating new configuration: %w", err)
	}

	newDoc, err := parser.Load(c.opts.NewConfigPath, c.opts.Format)
	if err != nil {
		log.Error().Err(err).Msg("failed to load new configuration")
		return &Result{
			Outcome: OutcomeLoadFailed,
			Alerts: []Alert{{
				File:    c.opts.NewConfigPath,
				Summary: "Failed to load the new configuration. Please check the configuration file.",
			}},
		}, nil
	}
	newText := canonical.Marshal(newDoc)

	files, err := c.historyFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Warn().Str("history_dir", c.opts.HistoryDir).
			Msg("no historical configuration files found, skipping comparison")
		return &Result{
			Outcome: OutcomeNoHistory,
			Alerts: []Alert{{
				Summary: "No historical configurations found. Unable to perform comparison.",
			}},
		}, nil
	}

	threshold := differ.Threshold(c.opts.Sensitivity)
	alerts := c.compareAll(ctx, files, newText, threshold)

	return &Result{Outcome: OutcomeCompared, Alerts: alerts}, nil
}

// historyFiles lists the regular files of the history directory in
// lexicographic order.
func (c *Comparator) historyFiles() ([]string, error) {
	entries, err := os.ReadDir(c.opts.HistoryDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryMissing, c.opts.HistoryDir)
		}
		return nil, fmt.Errorf("listing history directory %s: %w", c.opts.HistoryDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// compareAll runs the per-file loop, sequentially or under a bounded
// errgroup. Results land in a per-file slot so alert order follows the
// sorted file list regardless of scheduling.
func (c *Comparator) compareAll(ctx context.Context, files []string, newText string, threshold float64) []Alert {
	slots := make([]*Alert, len(files))

	if c.opts.Concurrency <= 1 {
		for i, name := range files {
			slots[i] = c.compareOne(ctx, name, newText, threshold)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.opts.Concurrency)
		for i, name := range files {
			i, name := i, name
			g.Go(func() error {
				slots[i] = c.compareOne(gctx, name, newText, threshold)
				return nil
			})
		}
		// Workers never return errors; skips are handled per file.
		_ = g.Wait()
	}

	alerts := make([]Alert, 0, len(files))
	for _, alert := range slots {
		if alert != nil {
			alerts = append(alerts, *alert)
		}
	}
	return alerts
}

// compareOne gates, loads, and scores a single history file. Any failure
// skips the file without aborting the run; history is assumed imperfect.
func (c *Comparator) compareOne(ctx context.Context, name, newText string, threshold float64) *Alert {
	path := filepath.Join(c.opts.HistoryDir, name)
	log := c.logger.With().Str("history_file", name).Logger()

	if err := c.validator.Validate(ctx, path); err != nil {
		log.Warn().Err(err).Msg("skipping invalid history file")
		return nil
	}

	doc, err := parser.Load(path, c.opts.Format)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load historical config, skipping")
		return nil
	}

	script := differ.Diff(canonical.Marshal(doc), newText)
	score := differ.Score(script)
	if !differ.Decide(score, threshold) {
		log.Info().Float64("score", score).Msg("changes within acceptable limits")
		return nil
	}

	log.Warn().Float64("score", score).Msg("significant deviation detected")
	return &Alert{
		File:    name,
		Score:   score,
		Summary: fmt.Sprintf("Significant deviation detected compared to %s", name),
		Diff:    differ.Transcript(script),
	}
}
