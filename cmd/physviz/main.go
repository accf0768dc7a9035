package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tmarkov/physviz/internal/analysis"
	"github.com/tmarkov/physviz/internal/config"
	"github.com/tmarkov/physviz/internal/export"
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/metrics"
	"github.com/tmarkov/physviz/internal/run"
	"github.com/tmarkov/physviz/internal/sims"
	"github.com/tmarkov/physviz/internal/storage"
	"github.com/tmarkov/physviz/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	width      float64
	height     float64
	configFile string
	preset     string
	setParams  []string
	outFile    string
	asCanvas   bool
	numRuns    int
	series     string
	xSeries    string
	ySeries    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physviz",
		Short: "interactive physics visualizations in the terminal",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physviz", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [sim]",
		Short: "run a simulation headlessly and record it",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [sim]",
		Short: "run a simulation with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	simsCmd := &cobra.Command{
		Use:   "sims",
		Short: "list available simulations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sims.Names() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [sim]",
		Short: "list available presets for a simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for sim: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded stat series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [sim]",
		Short: "run a simulation and export its trail as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	addRunFlags(svgCmd)
	svgCmd.Flags().StringVar(&outFile, "out", "trail.svg", "output file")
	svgCmd.Flags().BoolVar(&asCanvas, "canvas", false, "render through the braille canvas as a dot grid")

	benchCmd := &cobra.Command{
		Use:   "bench [sim]",
		Short: "benchmark a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  benchSim,
	}

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [sim]",
		Short: "repeat a run and average its metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	addRunFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 8, "number of runs")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a recorded stat series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&series, "series", "", "stat label to analyze (default: first)")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase portrait of two recorded stat series",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&xSeries, "x-series", "", "stat label for x axis (default: first)")
	phaseCmd.Flags().StringVar(&ySeries, "y-series", "", "stat label for y axis (default: second)")

	rootCmd.AddCommand(runCmd, liveCmd, simsCmd, presetsCmd, listCmd, plotCmd,
		exportCmd, exportJSONCmd, exportCSVCmd, svgCmd, benchCmd, ensembleCmd,
		analyzeCmd, phaseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "surface width")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "surface height")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringArrayVar(&setParams, "set", nil, "set a parameter (key=value, repeatable)")
}

// buildConfig layers preset, config file, flags and --set overrides in
// that order.
func buildConfig(cmd *cobra.Command, sim string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Sim = sim

	if preset != "" {
		p := config.GetPreset(sim, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(sim))
		}
		*cfg = *p
		if cfg.Params != nil {
			params := make(map[string]float64, len(cfg.Params))
			for k, v := range cfg.Params {
				params[k] = v
			}
			cfg.Params = params
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *loaded
		cfg.Sim = sim
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}

	for _, kv := range setParams {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", kv, err)
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[key] = f
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	driver, err := sims.New(cfg.Sim)
	if err != nil {
		return err
	}

	runner := run.New(driver)
	for _, m := range metrics.Standard() {
		runner.AddMetric(m)
	}

	// report progress at each quarter of the run
	total := cfg.Frames()
	quarter := total / 4
	done := 0
	runner.AddObserver(run.ObserverFunc(func(stats []frame.Stat, t float64) {
		done++
		if quarter > 0 && done%quarter == 0 && done < total {
			fmt.Printf("  %3.0f%%  t=%.2fs\n", float64(done)/float64(total)*100, t)
		}
	}))

	fmt.Printf("running %s simulation...\n", cfg.Sim)
	start := time.Now()

	result, err := runner.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Sim, cfg.Dt, cfg.Duration, cfg.Params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Times))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	driver, err := sims.New(cfg.Sim)
	if err != nil {
		return err
	}

	m := viz.NewModel(cfg.Sim, driver, cfg.Dt, cfg.Params)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIM\tTIME\tDURATION\tDT\tFRAMES")

	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			r.ID,
			r.Sim,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Duration,
			r.Dt,
			r.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	result, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(result.Rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("sim: %s\n", meta.Sim)
	fmt.Printf("samples: %d\n\n", len(result.Rows))

	maxPlots := 6
	for i, label := range result.Labels {
		if i >= maxPlots {
			break
		}
		fmt.Println(viz.PlotSeries(result.Series(label), label, 80, 10))
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	result.Metrics = meta.Metrics

	if outFile == "" {
		return storage.ExportJSONStdout(meta.Sim, meta.Dt, meta.Duration, result)
	}
	if err := storage.ExportJSON(outFile, meta.Sim, meta.Dt, meta.Duration, result); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, result.Labels...)); err != nil {
		return err
	}
	for i, row := range result.Rows {
		record := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	driver, err := sims.New(cfg.Sim)
	if err != nil {
		return err
	}

	src, ok := driver.(frame.PointSource)
	if !ok {
		return fmt.Errorf("sim %s exposes no drawable points", cfg.Sim)
	}

	driver.Init(frame.Surface{Width: cfg.Width, Height: cfg.Height})
	params := frame.Params(cfg.Params)
	for i := 0; i < cfg.Frames(); i++ {
		driver.Advance(cfg.Dt, params)
		params = nil
	}
	var svg string
	if asCanvas {
		surface := frame.Surface{Width: cfg.Width, Height: cfg.Height}
		svg = export.TrailToCanvasSVG(src.Points(), surface, 80, 24, 4)
	} else {
		svg = export.TrailToSVG(src.Points(), int(cfg.Width)*4, int(cfg.Height)*4, "#00ff00")
	}
	driver.Destroy()

	if svg == "" {
		return fmt.Errorf("not enough points to export")
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	result, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(result.Labels) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	label := series
	if label == "" {
		label = result.Labels[0]
	}
	values := result.Series(label)
	if values == nil {
		return fmt.Errorf("unknown series %q (available: %v)", label, result.Labels)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("series: %s (%d samples at dt=%.4fs)\n\n", label, len(values), meta.Dt)

	freq := analysis.DominantFrequency(values, meta.Dt)
	if freq == 0 {
		fmt.Println("no dominant oscillation found")
		return nil
	}
	fmt.Printf("dominant frequency: %.4f Hz (period %.3fs)\n\n", freq, 1/freq)

	spectrum := analysis.Spectrum(values)
	if len(spectrum) > 64 {
		spectrum = spectrum[:64]
	}
	fmt.Println(viz.PlotSeries(spectrum, "power spectrum (low bins)", 80, 10))
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	result, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(result.Labels) < 2 {
		return fmt.Errorf("need at least two recorded series for a phase portrait")
	}

	xLabel, yLabel := xSeries, ySeries
	if xLabel == "" {
		xLabel = result.Labels[0]
	}
	if yLabel == "" {
		yLabel = result.Labels[1]
	}

	xs := result.Series(xLabel)
	ys := result.Series(yLabel)
	if xs == nil || ys == nil {
		return fmt.Errorf("unknown series (available: %v)", result.Labels)
	}

	portrait := analysis.NewPhasePortrait(xLabel, xs, yLabel, ys)
	fmt.Printf("%s vs %s\n\n", yLabel, xLabel)
	fmt.Print(portrait.Render(60, 20))
	return nil
}

func benchSim(cmd *cobra.Command, args []string) error {
	sim := args[0]

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.004, 1.0 / 60.0, 0.05}

	fmt.Printf("benchmarking %s\n\n", sim)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tFRAMES\tTIME\tFRAMES/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			driver, err := sims.New(sim)
			if err != nil {
				return err
			}

			cfg := config.DefaultConfig()
			cfg.Sim = sim
			cfg.Dt = step
			cfg.Duration = dur

			start := time.Now()
			result, err := run.New(driver).Run(context.Background(), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			frames := len(result.Times)
			rate := float64(frames) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n", dur, step, frames, elapsed.Round(time.Microsecond), rate)
		}
	}

	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	e := run.NewEnsemble(func() (frame.Driver, error) {
		return sims.New(cfg.Sim)
	}, numRuns)

	fmt.Printf("running %d x %s...\n", numRuns, cfg.Sim)
	results, err := e.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	fmt.Println("\nmean metrics:")
	for name, val := range run.MeanMetrics(results) {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}
