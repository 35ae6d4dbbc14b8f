// Package scenario runs scripted batches of searches.
package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/CompProgTools/Algoview/internal/input"
	"github.com/CompProgTools/Algoview/internal/metrics"
	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/telemetry"
)

// Scenario is a named list of searches loaded from YAML.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

type Run struct {
	Algorithm string `yaml:"algorithm"`
	Sequence  []int  `yaml:"sequence"`
	Target    int    `yaml:"target"`
	// Sort sorts the sequence first even for algorithms that accept any
	// order.
	Sort bool `yaml:"sort"`
	Save bool `yaml:"save"`
}

type Result struct {
	Run     Run
	Trace   search.Trace
	Metrics map[string]float64
	RunID   string
}

// Saver persists a trace and returns its id; *store.Store satisfies it.
type Saver interface {
	Save(tr search.Trace) (string, error)
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Execute generates every run in order. Runs marked save are written to
// saver when it is non-nil. It stops at the first failing run or when ctx
// is cancelled, returning the results gathered so far.
func Execute(ctx context.Context, sc *Scenario, saver Saver) ([]Result, error) {
	logger := telemetry.FromContext(ctx)
	results := make([]Result, 0, len(sc.Runs))

	for i, run := range sc.Runs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		kind, err := search.ParseKind(run.Algorithm)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		seq := input.Prepare(kind, run.Sequence)
		if run.Sort && !kind.RequiresSorted() {
			slices.Sort(seq)
		}

		tr := kind.Generate(seq, run.Target)
		res := Result{Run: run, Trace: tr, Metrics: metrics.Collect(tr)}

		if run.Save && saver != nil {
			id, err := saver.Save(tr)
			if err != nil {
				return results, fmt.Errorf("run %d save: %w", i+1, err)
			}
			res.RunID = id
		}

		logger.Info("scenario run",
			slog.Int("run", i+1),
			slog.String("algorithm", kind.String()),
			slog.Int("steps", tr.Len()),
			slog.Bool("found", tr.Found()))

		results = append(results, res)
	}

	return results, nil
}

// TrialConfig describes random trials for one algorithm.
type TrialConfig struct {
	Algorithm string
	Size      int
	MaxValue  int
	Trials    int
	Seed      int64
}

type TrialStats struct {
	Trials          int
	Hits            int
	MeanComparisons float64
	MaxComparisons  int
}

// RunTrials searches random sequences for random targets and summarises
// the comparison counts. The same seed yields the same stats.
func RunTrials(ctx context.Context, cfg TrialConfig) (TrialStats, error) {
	kind, err := search.ParseKind(cfg.Algorithm)
	if err != nil {
		return TrialStats{}, err
	}
	if cfg.Size < 0 || cfg.Trials <= 0 || cfg.MaxValue <= 0 {
		return TrialStats{}, fmt.Errorf("trials: size, trials and max value must be positive")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var stats TrialStats
	total := 0

	for trial := 0; trial < cfg.Trials; trial++ {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		seq := make([]int, cfg.Size)
		for i := range seq {
			seq[i] = rng.Intn(cfg.MaxValue)
		}
		target := rng.Intn(cfg.MaxValue)

		tr := kind.Generate(input.Prepare(kind, seq), target)
		n := int(metrics.Collect(tr, metrics.NewComparisons())["comparisons"])

		stats.Trials++
		total += n
		if n > stats.MaxComparisons {
			stats.MaxComparisons = n
		}
		if tr.Found() {
			stats.Hits++
		}
	}

	stats.MeanComparisons = float64(total) / float64(stats.Trials)
	return stats, nil
}
