package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/CompProgTools/Algoview/internal/config"
	"github.com/CompProgTools/Algoview/internal/export"
	"github.com/CompProgTools/Algoview/internal/input"
	"github.com/CompProgTools/Algoview/internal/metrics"
	"github.com/CompProgTools/Algoview/internal/playback"
	"github.com/CompProgTools/Algoview/internal/scenario"
	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/store"
	"github.com/CompProgTools/Algoview/internal/telemetry"
	"github.com/CompProgTools/Algoview/internal/tui"
	"github.com/CompProgTools/Algoview/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seqText    string
	target     int
	interval   string
	theme      string
	levelFlag  string
	logFile    string
	// run
	instant bool
	// export, plot
	outFile    string
	formatFlag string
	svgFile    string
	// algorithms
	searchTerm string
	category   string
	// bench
	benchSize   int
	benchMax    int
	benchTrials int
	benchSeed   int64
)

var (
	logger   = telemetry.Discard()
	logLevel = slog.LevelInfo
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "algoview",
		Short:         "step-by-step search algorithm visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel = telemetry.LogLevel()
			if levelFlag != "" {
				logLevel = telemetry.ParseLevel(levelFlag)
			}
			logger = telemetry.SetupLogger(os.Stderr, logLevel)
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset input")
	pf.StringVar(&seqText, "seq", "", "comma-separated sequence, e.g. \"1, 3, 5\"")
	pf.IntVar(&target, "target", 0, "value to search for")
	pf.StringVar(&interval, "interval", "", "playback interval override, e.g. 250ms")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&levelFlag, "log-level", "", "DEBUG, INFO, WARN or ERROR")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write interactive-mode logs to this file")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "play a trace in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlayback,
	}
	runCmd.Flags().BoolVar(&instant, "instant", false, "play on a virtual clock without waiting")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print every step of a trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printTrace,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot the search window per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the chart as svg to this file")

	saveCmd := &cobra.Command{
		Use:   "save [algorithm]",
		Short: "generate a trace and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveTrace,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "replay a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a trace as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTrace,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&formatFlag, "format", "json", "json or svg")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "random trials over comparison counts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVar(&benchSize, "size", 1000, "sequence length")
	benchCmd.Flags().IntVar(&benchMax, "max", 10000, "values are drawn from [0, max)")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 500, "number of trials")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "random seed")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list the algorithm catalog",
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().StringVar(&searchTerm, "search", "", "filter by name or description")
	algorithmsCmd.Flags().StringVar(&category, "category", "", "filter by category")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, traceCmd, plotCmd, saveCmd, listCmd, showCmd,
		exportCmd, scenarioCmd, benchCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}

	tuiLogger := telemetry.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		tuiLogger = telemetry.NewLogger(f, logLevel)
	}

	return tui.Run(tui.Options{
		Kind:     in.Kind,
		Sequence: in.Sequence,
		Target:   in.Target,
		Theme:    in.Theme,
		Interval: in.Interval,
		Logger:   tuiLogger,
	})
}

func runPlayback(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	tr := in.trace()

	fmt.Printf("%s search for %d in [%s]\n", in.Kind, in.Target, input.Format(in.Sequence))
	if tr.Empty() {
		fmt.Println("nothing to play: the sequence is empty")
		return nil
	}

	var sched playback.Scheduler = playback.NewTickerScheduler()
	clock := playback.NewVirtualScheduler()
	if instant {
		sched = clock
	}

	var mu sync.Mutex
	printed := -1
	ctrl := playback.New(sched,
		playback.WithInterval(in.Interval),
		playback.WithLogger(telemetry.WithAlgorithm(logger, in.Kind.String())),
		playback.WithObserver(func(s playback.Snapshot) {
			mu.Lock()
			defer mu.Unlock()
			if s.Step == nil || s.Cursor <= printed {
				return
			}
			printed = s.Cursor
			fmt.Println(viz.StepLine(s.Cursor, s.Len, s.Step))
		}),
	)
	ctrl.Reset(tr)
	ctrl.Play()

	if instant {
		for !ctrl.IsComplete() && clock.Tick() {
		}
	} else {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		select {
		case <-ctrl.Done():
		case <-ctx.Done():
			ctrl.Pause()
			fmt.Println("interrupted")
			return nil
		}
	}

	printOutcome(tr)
	return nil
}

func printOutcome(tr search.Trace) {
	if tr.Found() {
		fmt.Printf("Found %d!\n", tr.Target())
	} else {
		fmt.Printf("%d not found\n", tr.Target())
	}
	label := "Steps taken"
	if tr.Kind() == search.Linear {
		label = "Elements checked"
	}
	fmt.Printf("%s: %d\n", label, tr.Len())
}

func printTrace(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	tr := in.trace()

	fmt.Printf("%s search for %d in [%s]\n\n", in.Kind, in.Target, input.Format(in.Sequence))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if in.Kind == search.Binary {
		fmt.Fprintln(w, "STEP\tLEFT\tRIGHT\tMID\tFOUND\tCOMPARISON")
	} else {
		fmt.Fprintln(w, "STEP\tINDEX\tFOUND\tCOMPARISON")
	}
	for i, st := range tr.Steps() {
		switch s := st.(type) {
		case search.BinaryStep:
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%t\t%s\n", i+1, s.Left, s.Right, s.Mid, s.Found, s.Comparison)
		case search.LinearStep:
			fmt.Fprintf(w, "%d\t%d\t%t\t%s\n", i+1, s.CurrentIndex, s.Found, s.Comparison)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	printMetrics(metrics.Collect(tr))
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-12s %g\n", name, m[name])
	}
}

func plotTrace(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	tr := in.trace()

	graph := viz.WindowChart(tr, 60, 10)
	if graph == "" {
		fmt.Println("no steps to plot")
		return nil
	}
	fmt.Println(graph)

	if svgFile != "" {
		doc := export.WindowSVG(tr, 600, 300, string(viz.GetTheme(in.Theme).Primary))
		if doc == "" {
			return fmt.Errorf("svg plot needs at least two steps, trace has %d", tr.Len())
		}
		if err := os.WriteFile(svgFile, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgFile)
	}
	return nil
}

func saveTrace(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}

	st := store.New(in.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(in.trace())
	if err != nil {
		return err
	}
	telemetry.WithRunID(logger, runID).Info("run saved", "dir", in.DataDir)
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGO\tTIME\tTARGET\tFOUND\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Target,
			run.Found,
			run.Steps,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	tr, err := st.Replay(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run:       %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("time:      %s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Printf("sequence:  [%s]\n", input.Format(meta.Sequence))
	fmt.Printf("target:    %d\n\n", meta.Target)

	for i, s := range tr.Steps() {
		fmt.Println(viz.StepLine(i, tr.Len(), s))
	}
	fmt.Println()
	printOutcome(tr)
	return nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	tr := in.trace()

	switch formatFlag {
	case "json":
		if outFile == "" {
			return store.ExportJSON(os.Stdout, tr)
		}
		if err := store.ExportJSONFile(outFile, tr); err != nil {
			return err
		}
	case "svg":
		doc := export.TraceSVG(tr, viz.GetTheme(in.Theme))
		if outFile == "" {
			fmt.Println(doc)
			return nil
		}
		if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (available: json, svg)", formatFlag)
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx = telemetry.WithLogger(ctx, logger.With("scenario", sc.Name))

	results, err := scenario.Execute(ctx, sc, st)

	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGO\tTARGET\tFOUND\tSTEPS\tCOMPARISONS\tRUN")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%t\t%d\t%g\t%s\n",
			i+1,
			r.Trace.Kind(),
			r.Trace.Target(),
			r.Trace.Found(),
			r.Trace.Len(),
			r.Metrics["comparisons"],
			r.RunID,
		)
	}
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	cfg := benchConfig(in)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := scenario.RunTrials(ctx, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("algorithm:        %s\n", cfg.Algorithm)
	fmt.Printf("sequence length:  %d\n", benchSize)
	fmt.Printf("trials:           %d\n", stats.Trials)
	fmt.Printf("hits:             %d\n", stats.Hits)
	fmt.Printf("mean comparisons: %.2f\n", stats.MeanComparisons)
	fmt.Printf("max comparisons:  %d\n", stats.MaxComparisons)
	fmt.Printf("elapsed:          %v\n", elapsed)
	return nil
}

func benchConfig(in runInput) scenario.TrialConfig {
	return scenario.TrialConfig{
		Algorithm: in.Kind.String(),
		Size:      benchSize,
		MaxValue:  benchMax,
		Trials:    benchTrials,
		Seed:      benchSeed,
	}
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	entries := search.FilterCatalog(searchTerm, category)
	if len(entries) == 0 {
		fmt.Printf("no algorithms match (categories: %s)\n", strings.Join(search.Categories(), ", "))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTATUS\tDESCRIPTION")
	for _, a := range entries {
		status := "coming soon"
		if a.Implemented {
			status = "ready"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Category, status, a.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	kinds := search.Kinds()
	if len(args) > 0 {
		kind, err := search.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []search.Kind{kind}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGO\tPRESET\tTARGET\tSEQUENCE")
	for _, k := range kinds {
		for _, name := range config.ListPresets(k.String()) {
			p := config.GetPreset(k.String(), name)
			fmt.Fprintf(w, "%s\t%s\t%d\t[%s]\n", k, name, p.Target, input.Format(p.Sequence))
		}
	}
	return w.Flush()
}
