package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbital/internal/config"
	"github.com/san-kum/orbital/internal/export"
	"github.com/san-kum/orbital/internal/gravity"
	"github.com/san-kum/orbital/internal/metrics"
	"github.com/san-kum/orbital/internal/scenario"
	"github.com/san-kum/orbital/internal/storage"
	"github.com/san-kum/orbital/internal/viz"
)

var (
	dataDir    string
	dt         float64
	timeUnits  string
	spaceUnits string
	massUnits  string
	limit      int
	noHist     bool
	seed       int64
	configFile string
	frameRate  int
	// random command ranges
	minBodies int
	maxBodies int
	massMin   float64
	massMax   float64
	saveTo    string
	// export/plot options
	outFile   string
	gifDelay  int
	plotBody  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbital",
		Short: "2D planetary gravity simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbital", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario.json|preset]",
		Short: "run a simulation and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addEngineFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "run a randomly generated scenario",
		RunE:  runRandom,
	}
	addEngineFlags(randomCmd)
	randomCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	randomCmd.Flags().IntVar(&minBodies, "min-bodies", 2, "minimum number of bodies")
	randomCmd.Flags().IntVar(&maxBodies, "max-bodies", 6, "maximum number of bodies")
	randomCmd.Flags().Float64Var(&massMin, "mass-min", 1e13, "minimum mass")
	randomCmd.Flags().Float64Var(&massMax, "mass-max", 1e15, "maximum mass")
	randomCmd.Flags().StringVar(&saveTo, "save", "", "also write the generated scenario to a JSON file")

	liveCmd := &cobra.Command{
		Use:   "live [scenario.json|preset]",
		Short: "watch a simulation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addEngineFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's distance from the origin over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "", "body label (default: first body)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run's trajectories to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "trajectories.svg", "output file")

	animateCmd := &cobra.Command{
		Use:   "animate [scenario.json|preset]",
		Short: "simulate and export an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  animateScenario,
	}
	addEngineFlags(animateCmd)
	animateCmd.Flags().StringVarP(&outFile, "out", "o", "orbit.gif", "output file")
	animateCmd.Flags().IntVar(&gifDelay, "delay", 4, "frame delay (1/100 s)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %d bodies, dt=%g, %d steps\n", name, len(p.Data), p.Config.Dt, p.Config.Limit)
			}
		},
	}

	rootCmd.AddCommand(runCmd, randomCmd, liveCmd, listCmd, plotCmd, exportCmd, animateCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0, "base interval (0 = scenario default)")
	cmd.Flags().StringVar(&timeUnits, "time-units", "", "time units (millisecs..yrs)")
	cmd.Flags().StringVar(&spaceUnits, "space-units", "", "space units (mm, cm, m, km)")
	cmd.Flags().StringVar(&massUnits, "mass-units", "", "mass units (mg, g, kg, t)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of steps (0 = scenario default)")
	cmd.Flags().BoolVar(&noHist, "no-hist", false, "disable trajectory history")
}

// buildSystem resolves the scenario argument (preset name or JSON
// path, falling back to the config file's scenario entry) and
// constructs the engine with CLI overrides applied.
func buildSystem(arg string) (*gravity.System, string, error) {
	var data map[string]gravity.BodyData
	cfg := config.DefaultConfig()

	if arg == "" && configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		arg = fileCfg.Scenario
	}
	if arg == "" {
		return nil, "", fmt.Errorf("no scenario given (argument or config file)")
	}
	name := arg

	if p := config.GetPreset(arg); p != nil {
		data = p.Data
		cfg = p.Config
	} else {
		loaded, err := scenario.Load(arg)
		if err != nil {
			return nil, "", err
		}
		data = loaded
		name = strings.TrimSuffix(strings.TrimSuffix(arg, ".json"), "/")
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		cfg = fileCfg
	}

	engineCfg := cfg.EngineConfig()
	if dt > 0 {
		engineCfg.BaseInterval = dt
	}
	if timeUnits != "" {
		engineCfg.TimeUnits = timeUnits
	}
	if spaceUnits != "" {
		engineCfg.SpaceUnits = spaceUnits
	}
	if massUnits != "" {
		engineCfg.MassUnits = massUnits
	}
	if limit > 0 {
		engineCfg.Limit = limit
	}
	if noHist {
		engineCfg.NoHistory = true
	}

	sys, err := gravity.New(data, engineCfg)
	if err != nil {
		return nil, "", err
	}
	return sys, name, nil
}

func runAndStore(sys *gravity.System, name string, seed int64) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s (%d bodies, %d steps)...\n", name, sys.BodyCount(), sys.Limit())
	start := time.Now()

	result, err := sys.Run(context.Background())
	if err != nil {
		return err
	}

	ms := metrics.Default(sys)
	for _, f := range result.Frames {
		for _, m := range ms {
			m.Observe(f)
		}
	}
	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}

	runID, err := st.Save(name, seed, sys, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for _, m := range ms {
		fmt.Printf("  %s: %.6g\n", m.Name(), m.Value())
	}
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	sys, name, err := buildSystem(arg)
	if err != nil {
		return err
	}
	return runAndStore(sys, name, 0)
}

func runRandom(cmd *cobra.Command, args []string) error {
	r := scenario.NewRandomizer(seed)
	r.MinBodies = minBodies
	r.MaxBodies = maxBodies
	r.Mass = scenario.Range{Min: massMin, Max: massMax}

	data := r.Generate()
	if saveTo != "" {
		if err := scenario.Save(saveTo, data); err != nil {
			return err
		}
		fmt.Printf("scenario written to %s\n", saveTo)
	}

	cfg := config.DefaultConfig().EngineConfig()
	if dt > 0 {
		cfg.BaseInterval = dt
	}
	if limit > 0 {
		cfg.Limit = limit
	}
	cfg.NoHistory = noHist

	sys, err := gravity.New(data, cfg)
	if err != nil {
		return err
	}
	return runAndStore(sys, "random", seed)
}

func runLive(cmd *cobra.Command, args []string) error {
	sys, _, err := buildSystem(args[0])
	if err != nil {
		return err
	}
	return viz.Run(sys, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBODIES\tDT\tSTEPS\tENERGY DRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%g\t%d\t%.2e\n",
			run.ID, len(run.Bodies), run.Dt, run.Limit, run.Metrics["energy_drift"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, tracks, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	body := 0
	if plotBody != "" {
		body = -1
		for i, label := range meta.Bodies {
			if label == plotBody {
				body = i
				break
			}
		}
		if body < 0 {
			return fmt.Errorf("unknown body %q (have %v)", plotBody, meta.Bodies)
		}
	}
	if body >= len(tracks) || len(tracks[body]) == 0 {
		return fmt.Errorf("no trajectory data for body %d", body)
	}

	radii := make([]float64, len(tracks[body]))
	for i, p := range tracks[body] {
		radii[i] = math.Sqrt(p.X*p.X + p.Y*p.Y)
	}

	fmt.Printf("%s: distance from origin [%s]\n\n", meta.Bodies[body], meta.SpaceUnits)
	graph := asciigraph.Plot(radii,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("time step (dt=%g %s)", meta.Dt, meta.TimeUnits)))
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, tracks, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	svg := export.TrajectoriesToSVG(tracks, meta.Bodies, 960, 720)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func animateScenario(cmd *cobra.Command, args []string) error {
	sys, _, err := buildSystem(args[0])
	if err != nil {
		return err
	}
	if err := export.AnimateGIF(sys, outFile, gifDelay); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
