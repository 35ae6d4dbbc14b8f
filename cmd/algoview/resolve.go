package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CompProgTools/Algoview/internal/config"
	"github.com/CompProgTools/Algoview/internal/input"
	"github.com/CompProgTools/Algoview/internal/search"
)

// runInput is everything a verb needs to build and play one trace.
type runInput struct {
	Kind     search.Kind
	Sequence []int
	Target   int
	Interval time.Duration
	Theme    string
	DataDir  string
}

// resolveInput layers defaults, the config file, the algorithm argument,
// the preset and finally explicitly set flags.
func resolveInput(cmd *cobra.Command, args []string) (runInput, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return runInput{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if len(args) > 0 {
		kind, err := search.ParseKind(args[0])
		if err != nil {
			return runInput{}, err
		}
		if kind.String() != cfg.Algorithm && configFile == "" && preset == "" {
			if err := cfg.ApplyPreset(kind.String(), "classic"); err != nil {
				return runInput{}, err
			}
		}
		cfg.Algorithm = kind.String()
	}

	if preset != "" {
		kind, err := cfg.Kind()
		if err != nil {
			return runInput{}, err
		}
		if err := cfg.ApplyPreset(kind.String(), preset); err != nil {
			return runInput{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seq") {
		cfg.Sequence = input.ParseSequence(seqText)
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return runInput{}, err
	}
	kind, _ := cfg.Kind()
	d, _ := cfg.IntervalDuration()

	return runInput{
		Kind:     kind,
		Sequence: input.Prepare(kind, cfg.Sequence),
		Target:   cfg.Target,
		Interval: d,
		Theme:    cfg.Theme,
		DataDir:  cfg.DataDir,
	}, nil
}

func (in runInput) trace() search.Trace {
	return in.Kind.Generate(in.Sequence, in.Target)
}
