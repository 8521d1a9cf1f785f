package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/lalithu/Classical-TwoBody/internal/config"
	"github.com/lalithu/Classical-TwoBody/internal/diag"
	"github.com/lalithu/Classical-TwoBody/internal/export"
	"github.com/lalithu/Classical-TwoBody/internal/gravity"
	"github.com/lalithu/Classical-TwoBody/internal/orbit"
	"github.com/lalithu/Classical-TwoBody/internal/store"
	"github.com/lalithu/Classical-TwoBody/internal/tui"
	"github.com/lalithu/Classical-TwoBody/internal/viz"
)

var (
	dataDir    string
	configFile string
	timeSpan   float64
	samples    int
	gConst     float64
	tolerance  float64
	softening  float64
	frameRate  int
	format     string
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbits",
		Short: "classical two- and three-body gravitational simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbits", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "integrate a scenario and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().Float64Var(&timeSpan, "span", 0, "simulation duration (s)")
	runCmd.Flags().IntVar(&samples, "samples", 0, "number of sample points")
	runCmd.Flags().Float64Var(&gConst, "g", 0, "gravitational constant")
	runCmd.Flags().Float64Var(&tolerance, "tol", 0, "solver tolerance")
	runCmd.Flags().Float64Var(&softening, "softening", 0, "softening length (0 = none)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's orbit trace and coordinate series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	diagnoseCmd := &cobra.Command{
		Use:   "diagnose [run_id]",
		Short: "conserved-quantity report for a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  diagnoseRun,
	}

	animateCmd := &cobra.Command{
		Use:   "animate [run_id]",
		Short: "replay a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  animateRun,
	}
	animateCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format: json, csv or svg")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, diagnoseCmd, animateCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		cfg = loaded
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	default:
		cfg = config.GetPreset("two-body")
	}

	// CLI flags override file/preset values
	if cmd.Flags().Changed("span") {
		cfg.TimeSpan = timeSpan
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gConst
	}
	if cmd.Flags().Changed("tol") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}

	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	fmt.Printf("integrating %s (%d bodies, %d samples over %gs)...\n",
		scenarioName(cfg), reg.Len(), cfg.Samples, cfg.TimeSpan)
	start := time.Now()

	tr, err := orbit.Integrate(context.Background(), reg, cfg.OrbitConfig())
	var integErr *orbit.IntegrationError
	if err != nil && !errors.As(err, &integErr) {
		return err
	}
	if integErr != nil {
		fmt.Println(viz.Warn.Render("warning: " + integErr.Error()))
		fmt.Printf("trajectory truncated to %d of %d samples\n", tr.Len(), cfg.Samples)
	}

	elapsed := time.Since(start)

	sys := gravity.NewSystem(reg, cfg.G)
	sys.Softening = cfg.Softening
	rep := diag.Analyze(tr, sys)

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, tr, rep)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", tr.Len())
	fmt.Printf("energy drift: %.3e\n", rep.EnergyDrift)
	fmt.Printf("momentum drift: %.3e\n", rep.MomentumDrift)

	return nil
}

func scenarioName(cfg *config.Config) string {
	if cfg.Scenario != "" {
		return cfg.Scenario
	}
	return "scenario"
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSPAN\tSAMPLES\tBODIES\tE-DRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%gs\t%d\t%d\t%.2e\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TimeSpan,
			run.Samples,
			len(run.Bodies),
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func bodyColors(meta *store.RunMetadata) []string {
	colors := make([]string, len(meta.Bodies))
	for i, b := range meta.Bodies {
		colors[i] = b.Color
	}
	return colors
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("%s — %d samples over %gs", meta.ID, tr.Len(), meta.TimeSpan)))
	if tr.Truncated {
		fmt.Println(viz.Warn.Render("note: trajectory is truncated"))
	}
	fmt.Println()
	fmt.Print(viz.PlotTrajectory(tr, bodyColors(meta), 80, 24))
	fmt.Println()

	axes := []string{"x", "y", "z"}
	plots := 0
	for b, name := range tr.Names {
		for k := 0; k < tr.Dim && plots < 6; k++ {
			graph := asciigraph.Plot(tr.PositionSeries(b, k),
				asciigraph.Height(8),
				asciigraph.Width(72),
				asciigraph.Caption(fmt.Sprintf("%s %s vs time", name, axes[k])),
			)
			fmt.Println(graph)
			fmt.Println()
			plots++
		}
	}

	return nil
}

func rebuildSystem(meta *store.RunMetadata) (*gravity.System, error) {
	cfg := &config.Config{
		G:         meta.G,
		TimeSpan:  meta.TimeSpan,
		Samples:   meta.Samples,
		Softening: meta.Softening,
		Bodies:    meta.Bodies,
	}
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	sys := gravity.NewSystem(reg, meta.G)
	sys.Softening = meta.Softening
	return sys, nil
}

func diagnoseRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	sys, err := rebuildSystem(meta)
	if err != nil {
		return err
	}
	rep := diag.Analyze(tr, sys)

	fmt.Println(viz.Title.Render("conserved quantities: " + meta.ID))
	fmt.Printf("E(0) = %.6e\n", rep.Energy[0])
	fmt.Printf("max relative energy drift: %.3e\n", rep.EnergyDrift)
	fmt.Printf("max momentum drift: %.3e\n\n", rep.MomentumDrift)

	graph := asciigraph.Plot(rep.Energy,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("total energy vs time"),
	)
	fmt.Println(graph)
	fmt.Println()

	lz := make([]float64, len(rep.AngularMomentum))
	for i, l := range rep.AngularMomentum {
		lz[i] = l[len(l)-1]
	}
	graph = asciigraph.Plot(lz,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("angular momentum (z) vs time"),
	)
	fmt.Println(graph)

	return nil
}

func animateRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return tui.Run(tr, bodyColors(meta), frameRate)
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return export.JSON(out, meta, tr)
	case "svg":
		_, err := io.WriteString(out, export.SVG(meta, tr, 800, 600))
		return err
	case "csv":
		f, err := os.Open(filepath.Join(dataDir, args[0], "samples.csv"))
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(out, f)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tDIM\tSPAN\tSAMPLES\tG")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		dim := 0
		if len(p.Bodies) > 0 {
			dim = len(p.Bodies[0].Position)
		}
		fmt.Fprintf(w, "%s\t%d\t%dD\t%g\t%d\t%g\n",
			name, len(p.Bodies), dim, p.TimeSpan, p.Samples, p.G)
	}
	return w.Flush()
}
